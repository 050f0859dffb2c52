package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// kcalSteps are the y-axis intervals a calorie chart may use.
var kcalSteps = []float64{100, 250, 500, 1000, 2000, 5000}

// eighths are the partial blocks for a bar's top cell.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders kcal values as a one-line block sparkline.
func Sparkline(kcal []float64, color lipgloss.Color) string {
	if len(kcal) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Background(theme.Active.Surface).
		Render(cli.RenderSparkline(kcal))
}

// CalorieChart draws one bar per day, oldest first. With a positive budget a
// dotted line marks it and each bar takes the intake status color for its
// day. Bars that do not fit in width are dropped from the oldest end. Very
// small areas fall back to a sparkline.
func CalorieChart(kcal []float64, labels []string, budget float64, width, height int) string {
	if len(kcal) == 0 {
		return ""
	}
	t := theme.Active
	if width < 15 || height < 3 {
		return Sparkline(kcal, t.Calories)
	}

	peak := budget
	for _, v := range kcal {
		peak = math.Max(peak, v)
	}
	step, top := kcalAxis(peak, height)

	yLabelW := len(strconv.Itoa(int(top))) + 1
	plotW := width - yLabelW - 1

	barW := min(6, max(1, (plotW+1)/len(kcal)-1))
	if fit := (plotW + 1) / (barW + 1); fit < len(kcal) {
		kcal = kcal[len(kcal)-fit:]
		if len(labels) > fit {
			labels = labels[len(labels)-fit:]
		}
	}
	axisLen := len(kcal)*(barW+1) - 1

	// Row r (1-based from the bottom) covers (top*(r-1)/height, top*r/height].
	tickAt := make(map[int]string)
	for v := step; v <= top; v += step {
		tickAt[int(math.Round(v/top*float64(height)))] = strconv.Itoa(int(v))
	}

	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := func(v float64) lipgloss.Style {
		c := t.Calories
		if budget > 0 {
			c = t.Intake(v / budget)
		}
		return lipgloss.NewStyle().Foreground(c).Background(t.Surface)
	}

	var b strings.Builder
	rowSpan := top / float64(height)
	for r := height; r >= 1; r-- {
		lo, hi := rowSpan*float64(r-1), rowSpan*float64(r)
		fill := " "
		if budget > lo && budget <= hi {
			fill = "┄"
		}

		b.WriteString(axis.Render(fmt.Sprintf("%*s│", yLabelW, tickAt[r])))
		for i, v := range kcal {
			if i > 0 {
				b.WriteString(axis.Render(fill))
			}
			switch {
			case v >= hi:
				b.WriteString(barStyle(v).Render(strings.Repeat("█", barW)))
			case v > lo:
				idx := max(1, min(8, int((v-lo)/rowSpan*8)))
				b.WriteString(barStyle(v).Render(strings.Repeat(string(eighths[idx]), barW)))
			default:
				b.WriteString(axis.Render(strings.Repeat(fill, barW)))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(axis.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == len(kcal) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axis.Render(dayLabelRow(labels, barW, axisLen)))
	}
	return b.String()
}

// kcalAxis picks the smallest step from kcalSteps that keeps the axis to at
// most height/2 ticks, and the axis top as a whole number of steps.
func kcalAxis(peak float64, height int) (step, top float64) {
	ticks := float64(max(2, height/2))
	step = kcalSteps[len(kcalSteps)-1]
	for _, s := range kcalSteps {
		if math.Ceil(peak/s) <= ticks {
			step = s
			break
		}
	}
	for math.Ceil(peak/step) > ticks {
		step *= 2
	}
	top = math.Max(step, math.Ceil(peak/step)*step)
	return step, top
}

// dayLabelRow places each label under the left edge of its bar, skipping
// any that would run into the previous one.
func dayLabelRow(labels []string, barW, axisLen int) string {
	row := []rune(strings.Repeat(" ", axisLen))
	next := 0
	for i, lbl := range labels {
		pos := i * (barW + 1)
		r := []rune(lbl)
		if pos < next || pos+len(r) > axisLen {
			continue
		}
		copy(row[pos:], r)
		next = pos + len(r) + 1
	}
	return strings.TrimRight(string(row), " ")
}
