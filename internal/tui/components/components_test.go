package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/kburn/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(100, 3)
	if len(widths) != 3 || widths[0] != 34 || widths[1] != 33 || widths[2] != 33 {
		t.Fatalf("LayoutRow(100, 3) = %v", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d under the short card has no styling: %q", i, lines[i])
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	joined := CardRow([]string{
		ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20),
		ContentCard("Short", "A", 30),
	})
	lines := strings.Split(joined, "\n")
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
	}
	if CardRow([]string{"", ""}) != "" {
		t.Error("CardRow of empty cards should be empty")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Consumed", Value: "770 kcal"},
		{Label: "Budget", Value: "2,507 kcal"},
		{Label: "Remaining", Value: "1,737 kcal", Delta: "69% left", Color: theme.Active.UnderBudget},
	}, 90)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
	if !strings.Contains(row, "1,737 kcal") {
		t.Error("row missing remaining value")
	}
}

func TestColorForIntake(t *testing.T) {
	th := theme.Active
	tests := []struct {
		ratio float64
		want  lipgloss.Color
	}{
		{0, th.UnderBudget},
		{0.89, th.UnderBudget},
		{0.9, th.NearBudget},
		{1.0, th.NearBudget},
		{1.01, th.OverBudget},
	}
	for _, tt := range tests {
		if got := ColorForIntake(tt.ratio); got != tt.want {
			t.Errorf("ColorForIntake(%.2f) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
	if IntakeRatio(100, 0) != 0 {
		t.Error("zero budget ratio should be 0")
	}
}

func TestProgressBarOverBudget(t *testing.T) {
	out := ProgressBar(1.5, 10)
	if strings.Count(out, "█") != 10 {
		t.Errorf("over-budget bar should be full: %q", out)
	}
	if !strings.Contains(out, "150%") {
		t.Errorf("percentage should not be clamped: %q", out)
	}
}

func TestCalorieChart(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := CalorieChart([]float64{1800, 2600, 2100}, []string{"Mon", "Tue", "Wed"}, 2500, 40, 8)
	for _, want := range []string{"┄", "Mon", "Wed", "3000", "1000"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
	if CalorieChart(nil, nil, 0, 40, 8) != "" {
		t.Error("empty chart should render nothing")
	}
}

func TestCalorieChartColorsOverBudgetDays(t *testing.T) {
	theme.SetActive("flexoki-dark")
	overSeq := termenv.TrueColor.Color(string(theme.Active.OverBudget)).Sequence(false)

	if out := CalorieChart([]float64{1800, 2100}, nil, 2500, 40, 8); strings.Contains(out, overSeq) {
		t.Error("no day is over budget, chart should not use the over-budget color")
	}
	if out := CalorieChart([]float64{1800, 2900}, nil, 2500, 40, 8); !strings.Contains(out, overSeq) {
		t.Error("day above budget should use the over-budget color")
	}
}

func TestCalorieChartKeepsRecentDays(t *testing.T) {
	vals := make([]float64, 30)
	labels := make([]string, 30)
	for i := range vals {
		vals[i] = 2000
		labels[i] = "d"
	}
	labels[29] = "Z"
	out := CalorieChart(vals, labels, 2500, 20, 6)
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("line width %d exceeds 20: %q", w, line)
		}
	}
	if !strings.Contains(out, "Z") {
		t.Error("most recent day should stay on the chart")
	}
}

func TestKcalAxis(t *testing.T) {
	tests := []struct {
		peak      float64
		height    int
		step, top float64
	}{
		{2600, 8, 1000, 3000},
		{2600, 20, 500, 3000},
		{0, 8, 100, 100},
		{180, 8, 100, 200},
	}
	for _, tt := range tests {
		step, top := kcalAxis(tt.peak, tt.height)
		if step != tt.step || top != tt.top {
			t.Errorf("kcalAxis(%v, %d) = %v, %v; want %v, %v", tt.peak, tt.height, step, top, tt.step, tt.top)
		}
	}
}

func TestBudgetBarAndIntakeMetric(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active

	under := BudgetBar("Protein", th.Protein, 80, 150, "g", 8, 12)
	if !strings.Contains(under, "80") || !strings.Contains(under, "/ 150 g") {
		t.Errorf("bar should show amount and target: %q", under)
	}
	if !strings.Contains(under, "Protein") {
		t.Errorf("bar should show its label: %q", under)
	}
	if seq := termenv.TrueColor.Color(string(th.Protein)).Sequence(false); !strings.Contains(under, seq) {
		t.Errorf("label should use the protein color: %q", under)
	}

	m := IntakeMetric("Consumed", "2,700 kcal", "108% of budget", 1.08)
	if m.Color != th.OverBudget {
		t.Errorf("IntakeMetric color = %s, want over-budget %s", m.Color, th.OverBudget)
	}
	if m = IntakeMetric("Consumed", "900 kcal", "", 0.36); m.Color != th.UnderBudget {
		t.Errorf("IntakeMetric color = %s, want under-budget %s", m.Color, th.UnderBudget)
	}
}
