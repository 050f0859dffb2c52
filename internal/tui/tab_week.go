package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/diary"
	"github.com/theirongolddev/kburn/internal/tui/components"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderWeekTab(cw int) string {
	t := theme.Active
	week := a.data.week
	sum := diary.Summarize(week)
	var b strings.Builder

	avgRatio := 0.0
	if sum.Budget > 0 {
		avgRatio = sum.AvgCalories / float64(sum.Budget)
	}

	b.WriteString(components.MetricCardRow([]components.Metric{
		components.IntakeMetric("Avg / logged day", cli.FormatKcal(int(sum.AvgCalories+0.5)), fmt.Sprintf("%.0f%% of budget", avgRatio*100), avgRatio),
		{Label: "Logged days", Value: fmt.Sprintf("%d / %d", sum.LoggedDays, sum.Days), Delta: fmt.Sprintf("%d entries", sum.Entries)},
		{Label: "Over budget", Value: fmt.Sprintf("%d days", sum.DaysOverBudget), Color: overColor(sum.DaysOverBudget)},
		{Label: "Total", Value: cli.FormatKcal(sum.TotalCalories), Delta: "budget " + cli.FormatKcal(sum.Budget*sum.Days)},
	}, cw))
	b.WriteString("\n")

	if len(week) > 0 {
		vals := make([]float64, len(week))
		for i, d := range week {
			vals[len(week)-1-i] = float64(d.Calories)
		}
		b.WriteString(components.ContentCard(
			"Calories vs budget (7d)",
			components.CalorieChart(vals, chartDateLabels(week), float64(sum.Budget), components.CardInnerWidth(cw), 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Longer window trend from the --days range
	if len(a.data.days) > weekDays {
		vals := make([]float64, len(a.data.days))
		for i, d := range a.data.days {
			vals[len(a.data.days)-1-i] = float64(d.Calories)
		}
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		body := components.Sparkline(vals, t.Accent) + "\n" +
			dimStyle.Render(fmt.Sprintf("avg %s over %d logged days",
				cli.FormatKcal(int(a.data.summary.AvgCalories+0.5)), a.data.summary.LoggedDays))
		b.WriteString(components.ContentCard(fmt.Sprintf("Trend (%dd)", a.days), body, cw))
		b.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Daily breakdown", a.renderWeekTable(components.CardInnerWidth(cw)), cw))
	return b.String()
}

func (a App) renderWeekTable(innerW int) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	const cols = "%-11s %10s %10s %8s %8s %8s"
	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(cols, "Day", "Calories", "Remaining", "Protein", "Carbs", "Fat")))
	b.WriteString("\n")
	for _, d := range a.data.week {
		style := rowStyle
		if d.Entries == 0 {
			style = dimStyle
		}
		line := fmt.Sprintf(cols,
			d.Date.Format("Mon 02 Jan"),
			cli.FormatNumber(int64(d.Calories)),
			cli.FormatNumber(int64(d.Remaining)),
			cli.FormatGrams(d.Protein),
			cli.FormatGrams(d.Carbs),
			cli.FormatGrams(d.Fat))
		b.WriteString(style.Render(truncStr(line, innerW)))
		if d.OverBudget() {
			b.WriteString(lipgloss.NewStyle().Foreground(t.OverBudget).Background(t.Surface).Render(" ▲"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func overColor(days int) lipgloss.Color {
	if days > 0 {
		return theme.Active.OverBudget
	}
	return theme.Active.UnderBudget
}
