package components

import (
	"strings"

	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// today's intake gauge and refresh state on the right.
func RenderStatusBar(width int, dataAge string, consumed, budget int, refreshing, autoRefresh bool) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	left := hintStyle.Render(" [?]help  [r]efresh  [q]uit")

	right := ""
	if budget > 0 {
		right += CompactBudgetBar("kcal", consumed, budget, 28) + barStyle.Render("  ")
	}
	switch {
	case refreshing:
		right += accentStyle.Render("refreshing")
	case dataAge != "":
		right += dimStyle.Render(dataAge)
	}
	if autoRefresh {
		right += accentStyle.Render(" ⟳")
	}
	right += barStyle.Render(" ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return barStyle.Width(width).Render(left + barStyle.Render(strings.Repeat(" ", padding)) + right)
}
