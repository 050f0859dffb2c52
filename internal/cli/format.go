// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatCompact formats a count with a K/M suffix.
// e.g., 950 -> "950", 2507 -> "2.5K", 1234567 -> "1.2M"
func FormatCompact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatKcal formats a calorie count with separators and unit.
// e.g., 2507 -> "2,507 kcal"
func FormatKcal(n int) string {
	return FormatNumber(int64(n)) + " kcal"
}

// FormatGrams formats a macro weight. Whole grams drop the decimal.
// e.g., 56 -> "56 g", 0.3 -> "0.3 g"
func FormatGrams(g float64) string {
	if g == math.Trunc(g) {
		return fmt.Sprintf("%.0f g", g)
	}
	return fmt.Sprintf("%.1f g", g)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDelta formats the difference between intake and budget with a sign.
// e.g., (2100, 2000) -> "+100 kcal", (1800, 2000) -> "-200 kcal"
func FormatDelta(current, budget int) string {
	delta := current - budget
	if delta >= 0 {
		return "+" + FormatKcal(delta)
	}
	return "-" + FormatKcal(-delta)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatDay renders a YYYY-MM-DD date as "Mon 02 Jan". Unparseable input is
// returned unchanged.
func FormatDay(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s", FormatDayOfWeek(int(t.Weekday())), t.Format("02 Jan"))
}
