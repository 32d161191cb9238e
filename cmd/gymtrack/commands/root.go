package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	envFlag        string
	configPathFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gymtrack",
	Short: "gymtrack - personal workout tracking server",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&envFlag, "env", "development",
		"environment [prod | production | dev | development]",
	)
	rootCmd.PersistentFlags().StringVar(
		&configPathFlag, "config", "./config.toml",
		"path for the TOML config file",
	)
}
