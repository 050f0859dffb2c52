package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/tui/components"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	today := a.data.today
	plan := a.data.plan
	var b strings.Builder

	// Row 1: headline numbers
	ratio := components.IntakeRatio(today.Calories, today.Budget)
	remainingDelta := fmt.Sprintf("%.0f%% left", (1-today.Percent)*100)
	if today.OverBudget() {
		remainingDelta = "over by " + cli.FormatKcal(today.Calories-today.Budget)
	}
	budgetDelta := "TDEE " + cli.FormatKcal(plan.TDEE)
	if plan.Clamped {
		budgetDelta = "raised to the minimum"
	}

	b.WriteString(components.MetricCardRow([]components.Metric{
		components.IntakeMetric("Consumed", cli.FormatKcal(today.Calories), fmt.Sprintf("%.0f%% of budget", ratio*100), ratio),
		{Label: "Budget", Value: cli.FormatKcal(today.Budget), Delta: budgetDelta},
		components.IntakeMetric("Remaining", cli.FormatKcal(today.Remaining), remainingDelta, ratio),
		{Label: "Entries", Value: cli.FormatNumber(int64(today.Entries)), Delta: today.Date.Format("Mon 02 Jan")},
	}, cw))
	b.WriteString("\n")

	// Row 2: calorie bar + macros
	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw, cw}
	}

	barW := components.CardInnerWidth(halves[0]) - 8
	if barW < 10 {
		barW = 10
	}
	calCard := components.ContentCard("Calories", components.ProgressBar(ratio, barW), halves[0])

	labelW := 8
	macroBarW := components.CardInnerWidth(halves[1]) - labelW - 20
	if macroBarW < 6 {
		macroBarW = 6
	}
	m := plan.Macros
	var macroBody strings.Builder
	macroBody.WriteString(components.BudgetBar("Protein", t.Macro("protein"), today.Protein, float64(m.Protein.Grams), "g", labelW, macroBarW))
	macroBody.WriteString("\n")
	macroBody.WriteString(components.BudgetBar("Carbs", t.Macro("carbs"), today.Carbs, float64(m.Carbs.Grams), "g", labelW, macroBarW))
	macroBody.WriteString("\n")
	macroBody.WriteString(components.BudgetBar("Fat", t.Macro("fat"), today.Fat, float64(m.Fat.Grams), "g", labelW, macroBarW))
	macroCard := components.ContentCard("Macros", macroBody.String(), halves[1])

	if a.isCompactLayout() {
		b.WriteString(calCard)
		b.WriteString("\n")
		b.WriteString(macroCard)
	} else {
		b.WriteString(components.CardRow([]string{calCard, macroCard}))
	}
	b.WriteString("\n")

	// Row 3: today's entries
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Logged today (%d)", len(a.data.todayEntries)),
		a.renderTodayEntries(components.CardInnerWidth(cw)),
		cw,
	))

	return b.String()
}

func (a App) renderTodayEntries(innerW int) string {
	t := theme.Active
	entries := a.data.todayEntries

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(entries) == 0 {
		return mutedStyle.Render("Nothing logged yet. Try `kburn scan photo.jpg --log` or `kburn log`.")
	}

	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	kcalStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	nameW := innerW - 5 - 1 - 12
	if nameW < 10 {
		nameW = 10
	}

	var b strings.Builder
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		tm := e.Time
		if tm == "" {
			tm = "--:--"
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			timeStyle.Render(tm),
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(e.Name, nameW))),
			kcalStyle.Render(fmt.Sprintf("%10s", cli.FormatKcal(e.Calories))))
	}
	return b.String()
}
