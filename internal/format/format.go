// Package format holds the small presentation helpers used when rendering
// workout data: durations as "H:MM" / "Mm" and weights with a comma
// decimal separator.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Duration renders a workout duration. Spans of an hour or more come out as
// "H:MM" (minutes zero-padded, truncated to whole minutes), shorter spans
// as "Mm". Zero or negative spans render empty.
func Duration(d time.Duration) string {
	if d <= 0 {
		return ""
	}

	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours >= 1 {
		return fmt.Sprintf("%d:%02d", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Weight renders a weight value: whole numbers without decimals, otherwise
// up to 2 decimal places with trailing zeros stripped and a comma as the
// decimal separator (e.g. "22,5").
func Weight(w decimal.Decimal) string {
	s := w.Round(2).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return strings.ReplaceAll(s, ".", ",")
}

// NullWeight is Weight for nullable values; absent weights render empty.
func NullWeight(w decimal.NullDecimal) string {
	if !w.Valid {
		return ""
	}
	return Weight(w.Decimal)
}
