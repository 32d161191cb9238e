package main

import "github.com/svukovic/gymtrack/cmd/gymtrack/commands"

func main() {
	commands.Execute()
}
