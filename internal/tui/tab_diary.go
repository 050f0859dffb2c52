package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/model"
	"github.com/theirongolddev/kburn/internal/tui/components"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// diaryState tracks the cursor in the diary list. Index 0 is the newest entry.
type diaryState struct {
	cursor int
}

func (s *diaryState) up() {
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *diaryState) down(n int) {
	if s.cursor < n-1 {
		s.cursor++
	}
}

func (s *diaryState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// newestFirst reverses the oldest-first entry slice.
func newestFirst(entries []model.FoodEntry) []model.FoodEntry {
	out := make([]model.FoodEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

func (a App) renderDiaryTab(cw, h int) string {
	t := theme.Active
	entries := newestFirst(a.data.entries)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(entries) == 0 {
		return components.ContentCard(fmt.Sprintf("Diary (%dd)", a.days),
			mutedStyle.Render("No entries in this window."), cw)
	}

	listW := cw
	detailW := 0
	if !a.isCompactLayout() {
		detailW = cw / 3
		listW = cw - detailW
	}

	// Card border + title + header row take 4 lines.
	visible := h - 4
	if visible < 3 {
		visible = 3
	}
	offset := 0
	if a.diaryView.cursor >= visible {
		offset = a.diaryView.cursor - visible + 1
	}

	innerW := components.CardInnerWidth(listW)
	nameW := innerW - 10 - 1 - 5 - 1 - 10 - 1
	if nameW < 10 {
		nameW = 10
	}

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	var list strings.Builder
	list.WriteString(headStyle.Render(fmt.Sprintf("%-10s %-5s %-*s %10s", "Date", "Time", nameW, "Food", "Calories")))
	list.WriteString("\n")
	end := min(offset+visible, len(entries))
	for i := offset; i < end; i++ {
		e := entries[i]
		line := fmt.Sprintf("%-10s %-5s %-*s %10s",
			e.Date, e.Time, nameW, truncStr(e.Name, nameW), cli.FormatKcal(e.Calories))
		if i == a.diaryView.cursor {
			list.WriteString(selStyle.Render(line))
		} else {
			list.WriteString(rowStyle.Render(line))
		}
		list.WriteString("\n")
	}

	listCard := components.ContentCard(
		fmt.Sprintf("Diary (%dd) · %d/%d", a.days, a.diaryView.cursor+1, len(entries)),
		list.String(), listW)
	if detailW == 0 {
		return listCard
	}

	sel := entries[min(a.diaryView.cursor, len(entries)-1)]
	return components.CardRow([]string{listCard, components.ContentCard("Entry", renderEntryDetail(sel), detailW)})
}

func renderEntryDetail(e model.FoodEntry) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	rows := []struct{ label, value string }{
		{"Name", e.Name},
		{"Calories", cli.FormatKcal(e.Calories)},
		{"Protein", cli.FormatGrams(e.Protein)},
		{"Carbs", cli.FormatGrams(e.Carbs)},
		{"Fat", cli.FormatGrams(e.Fat)},
		{"Logged", strings.TrimSpace(e.Date + " " + e.Time)},
		{"Source", e.Source},
	}
	if e.ImageURL != "" {
		rows = append(rows, struct{ label, value string }{"Image", e.ImageURL})
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", r.label)), valueStyle.Render(r.value))
	}
	return b.String()
}
