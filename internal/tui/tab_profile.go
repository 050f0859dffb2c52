package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kburn/internal/budget"
	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/model"
	"github.com/theirongolddev/kburn/internal/tui/components"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProfileTab(cw int) string {
	t := theme.Active
	plan := a.data.plan
	p := plan.Profile

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	kv := func(b *strings.Builder, label, value string) {
		fmt.Fprintf(b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", label)), valueStyle.Render(value))
	}

	var prof strings.Builder
	kv(&prof, "Gender", string(p.Gender))
	kv(&prof, "Age", fmt.Sprintf("%d years", p.Age))
	kv(&prof, "Weight", fmt.Sprintf("%.1f kg", p.Weight))
	kv(&prof, "Height", fmt.Sprintf("%.1f cm", p.Height))
	kv(&prof, "Activity", p.ActivityLevel.Label())
	kv(&prof, "Goal", p.Goal.Label())
	prof.WriteString("\n")
	prof.WriteString(hintStyle.Render("[e] edit profile"))

	var calc strings.Builder
	kv(&calc, "BMR", fmt.Sprintf("%s kcal", cli.FormatNumber(int64(plan.BMR+0.5))))
	kv(&calc, "Activity factor", fmt.Sprintf("× %.3g", budget.ActivityFactor(p.ActivityLevel)))
	kv(&calc, "TDEE", cli.FormatKcal(plan.TDEE))
	kv(&calc, "Goal adjustment", fmt.Sprintf("%+d kcal", budget.GoalAdjustment(p.Goal)))
	target := cli.FormatKcal(plan.Target)
	if plan.Clamped {
		target += fmt.Sprintf(" (minimum %s)", cli.FormatKcal(budget.MinCalories))
	}
	kv(&calc, "Daily target", target)

	halves := components.LayoutRow(cw, 2)
	var b strings.Builder
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Profile", prof.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Budget", calc.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Profile", prof.String(), halves[0]),
			components.ContentCard("Budget", calc.String(), halves[1]),
		}))
	}
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Macro targets", renderMacroTable(plan.Macros), cw))
	return b.String()
}

func renderMacroTable(m model.MacroTargets) string {
	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	const cols = "%-10s %8s %10s %6s"
	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(cols, "Macro", "Grams", "Calories", "Share")))
	b.WriteString("\n")
	for _, row := range []struct {
		name string
		m    model.Macro
	}{
		{"Protein", m.Protein},
		{"Carbs", m.Carbs},
		{"Fat", m.Fat},
	} {
		b.WriteString(rowStyle.Render(fmt.Sprintf(cols,
			row.name,
			cli.FormatGrams(float64(row.m.Grams)),
			cli.FormatKcal(row.m.Calories),
			fmt.Sprintf("%.0f%%", row.m.Percentage*100))))
		b.WriteString("\n")
	}
	return b.String()
}
