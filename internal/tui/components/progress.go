package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// IntakeRatio returns consumed/budget without clamping. A zero budget yields 0.
func IntakeRatio(consumed, budget int) float64 {
	if budget <= 0 {
		return 0
	}
	return float64(consumed) / float64(budget)
}

// ColorForIntake is the active theme's status color for an intake ratio.
func ColorForIntake(ratio float64) lipgloss.Color {
	return theme.Active.Intake(ratio)
}

// ProgressBar renders a block progress bar with a trailing percentage.
// ratio may exceed 1; the bar is clamped but the percentage is not.
func ProgressBar(ratio float64, width int) string {
	t := theme.Active
	fillRatio := clamp01(ratio)
	filled := int(fillRatio * float64(width))
	if filled > width {
		filled = width
	}

	barColor := ColorForIntake(ratio)
	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", ratio*100))
}

// BudgetBar renders a labeled bar for an amount against a target, followed
// by "amount / target unit". The label and fill use color until the amount
// passes the target, then the fill switches to the over-budget color.
func BudgetBar(label string, color lipgloss.Color, amount, target float64, unit string, labelW, barWidth int) string {
	t := theme.Active

	ratio := 0.0
	if target > 0 {
		ratio = amount / target
	}
	fill := color
	if ratio > 1 {
		fill = t.OverBudget
	}

	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(clamp01(ratio)) +
		spaceStyle.Render(" ") +
		valueStyle.Render(cli.FormatNumber(int64(amount+0.5))) +
		dimStyle.Render(" / "+cli.FormatNumber(int64(target+0.5))+" "+unit)
}

// CompactBudgetBar renders a tiny status-bar-sized intake indicator.
func CompactBudgetBar(label string, consumed, budget, width int) string {
	t := theme.Active
	ratio := IntakeRatio(consumed, budget)

	barW := width - lipgloss.Width(label) - 6
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(ColorForIntake(ratio))),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(ColorForIntake(ratio)).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(clamp01(ratio)) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", ratio*100))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
