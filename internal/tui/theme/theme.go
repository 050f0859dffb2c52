// Package theme holds the dashboard palettes. A palette maps kburn's
// display roles (intake status against the budget, the three macros,
// chart bars) onto concrete terminal colors, so widgets never pick hues
// themselves.
package theme

import "github.com/charmbracelet/lipgloss"

// NearBudget is the intake ratio at which a day starts to count as close
// to its calorie budget.
const NearBudget = 0.9

// Theme is one named palette.
type Theme struct {
	Name string

	// Chrome.
	Background   lipgloss.Color
	Surface      lipgloss.Color // card and panel fill
	SurfaceHover lipgloss.Color // active tab, selected diary row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // header and help frame
	TextDim      lipgloss.Color
	TextMuted    lipgloss.Color
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Key          lipgloss.Color // key names in the help overlay

	// Intake against the daily budget.
	UnderBudget lipgloss.Color
	NearBudget  lipgloss.Color
	OverBudget  lipgloss.Color

	// Macronutrients.
	Protein lipgloss.Color
	Carbs   lipgloss.Color
	Fat     lipgloss.Color

	// Calories is the bar color for the weekly intake chart.
	Calories lipgloss.Color
}

// Intake picks the status color for consumed/budget: under, near (from
// NearBudget up to the budget itself) or over.
func (t Theme) Intake(ratio float64) lipgloss.Color {
	switch {
	case ratio > 1:
		return t.OverBudget
	case ratio >= NearBudget:
		return t.NearBudget
	default:
		return t.UnderBudget
	}
}

// Macro returns the color for a macro by its lower-case name ("protein",
// "carbs", "fat"). Anything else gets the muted text color.
func (t Theme) Macro(name string) lipgloss.Color {
	switch name {
	case "protein":
		return t.Protein
	case "carbs":
		return t.Carbs
	case "fat":
		return t.Fat
	}
	return t.TextMuted
}

// Active is the palette every widget reads from.
var Active = FlexokiDark

// FlexokiDark is the default: warm ink-on-paper tones, teal accents.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   "#100F0F",
	Surface:      "#1C1B1A",
	SurfaceHover: "#282726",
	Border:       "#403E3C",
	BorderAccent: "#3AA99F",
	TextDim:      "#575653",
	TextMuted:    "#878580",
	TextPrimary:  "#FFFCF0",
	Accent:       "#3AA99F",
	AccentBright: "#5BC8BE",
	Key:          "#24837B",
	UnderBudget:  "#879A39",
	NearBudget:   "#DA702C",
	OverBudget:   "#D14D41",
	Protein:      "#CE5D97",
	Carbs:        "#D0A215",
	Fat:          "#4385BE",
	Calories:     "#4385BE",
}

// CatppuccinMocha uses soft pastels on a deep violet base.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   "#1E1E2E",
	Surface:      "#313244",
	SurfaceHover: "#45475A",
	Border:       "#585B70",
	BorderAccent: "#89B4FA",
	TextDim:      "#6C7086",
	TextMuted:    "#A6ADC8",
	TextPrimary:  "#CDD6F4",
	Accent:       "#89B4FA",
	AccentBright: "#B4D0FB",
	Key:          "#94E2D5",
	UnderBudget:  "#A6E3A1",
	NearBudget:   "#FAB387",
	OverBudget:   "#F38BA8",
	Protein:      "#F5C2E7",
	Carbs:        "#F9E2AF",
	Fat:          "#89DCEB",
	Calories:     "#89B4FA",
}

// TokyoNight is a cool navy palette with neon highlights.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   "#1A1B26",
	Surface:      "#24283B",
	SurfaceHover: "#343A52",
	Border:       "#565F89",
	BorderAccent: "#7AA2F7",
	TextDim:      "#565F89",
	TextMuted:    "#A9B1D6",
	TextPrimary:  "#C0CAF5",
	Accent:       "#7AA2F7",
	AccentBright: "#A9C1FF",
	Key:          "#7DCFFF",
	UnderBudget:  "#9ECE6A",
	NearBudget:   "#FF9E64",
	OverBudget:   "#F7768E",
	Protein:      "#BB9AF7",
	Carbs:        "#E0AF68",
	Fat:          "#2AC3DE",
	Calories:     "#7AA2F7",
}

// Terminal sticks to the 16 ANSI colors so it follows the user's own
// terminal scheme.
var Terminal = Theme{
	Name:         "terminal",
	Background:   "0",
	Surface:      "0",
	SurfaceHover: "8",
	Border:       "8",
	BorderAccent: "6",
	TextDim:      "8",
	TextMuted:    "7",
	TextPrimary:  "15",
	Accent:       "6",
	AccentBright: "14",
	Key:          "6",
	UnderBudget:  "2",
	NearBudget:   "3",
	OverBudget:   "1",
	Protein:      "5",
	Carbs:        "11",
	Fat:          "4",
	Calories:     "4",
}

// All lists the palettes in the order the setup form offers them.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName looks a palette up by name. Unknown names get FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// Names returns the palette names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// SetActive switches Active to the named palette.
func SetActive(name string) {
	Active = ByName(name)
}
