// Package budget computes daily calorie targets and macro splits from a body profile.
//
// Every function here is pure: no I/O, no validation, no shared state.
// Callers validate profiles with model.Profile.Validate before calling in.
package budget

import (
	"math"

	"github.com/theirongolddev/kburn/internal/model"
)

// MinCalories is the safety floor for any daily target.
const MinCalories = 1200

// Energy density in kcal per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// MacroSplit is a whole-percent allocation of calories across macros.
type MacroSplit struct {
	Protein int
	Carbs   int
	Fat     int
}

var activityFactors = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

var goalAdjustments = map[model.Goal]int{
	model.GoalLose:     -500,
	model.GoalMaintain: 0,
	model.GoalGain:     500,
}

var macroSplits = map[model.Goal]MacroSplit{
	model.GoalLose:     {Protein: 35, Carbs: 40, Fat: 25},
	model.GoalMaintain: {Protein: 30, Carbs: 45, Fat: 25},
	model.GoalGain:     {Protein: 30, Carbs: 45, Fat: 25},
}

// BMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(p model.Profile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

// ActivityFactor returns the TDEE multiplier for a level.
// Unknown levels fall back to sedentary.
func ActivityFactor(level model.ActivityLevel) float64 {
	if f, ok := activityFactors[level]; ok {
		return f
	}
	return activityFactors[model.ActivitySedentary]
}

// GoalAdjustment returns the flat kcal offset for a goal.
func GoalAdjustment(goal model.Goal) int {
	return goalAdjustments[goal]
}

// TDEE returns total daily energy expenditure, rounded to the nearest kcal.
func TDEE(p model.Profile) int {
	return int(math.Round(BMR(p) * ActivityFactor(p.ActivityLevel)))
}

// DailyCalories returns the daily calorie target for a profile.
//
// Rounding happens once, on TDEE. The goal adjustment is then added and the
// result clamped to MinCalories.
func DailyCalories(p model.Profile) int {
	return max(MinCalories, TDEE(p)+GoalAdjustment(p.Goal))
}

// MacroSplitFor returns the percentage split for a goal.
// Unknown goals use the maintain split.
func MacroSplitFor(goal model.Goal) MacroSplit {
	if s, ok := macroSplits[goal]; ok {
		return s
	}
	return macroSplits[model.GoalMaintain]
}

// MacroTargets converts a calorie target into per-macro grams and calories.
//
// Grams are rounded independently, and calories are recomputed from the
// rounded grams, so the three calorie figures need not sum to the target.
func MacroTargets(calories int, goal model.Goal) model.MacroTargets {
	split := MacroSplitFor(goal)
	return model.MacroTargets{
		Protein: macro(calories, split.Protein, KcalPerGramProtein),
		Carbs:   macro(calories, split.Carbs, KcalPerGramCarbs),
		Fat:     macro(calories, split.Fat, KcalPerGramFat),
	}
}

func macro(calories, pct, kcalPerGram int) model.Macro {
	grams := int(math.Round(float64(calories*pct) / float64(100*kcalPerGram)))
	if grams < 0 {
		grams = 0
	}
	return model.Macro{
		Grams:      grams,
		Calories:   grams * kcalPerGram,
		Percentage: float64(pct) / 100,
	}
}

// Plan computes every derived figure for a profile in one pass.
func Plan(p model.Profile) model.BudgetPlan {
	tdee := TDEE(p)
	raw := tdee + GoalAdjustment(p.Goal)
	target := max(MinCalories, raw)
	return model.BudgetPlan{
		BMR:     BMR(p),
		TDEE:    tdee,
		Target:  target,
		Clamped: raw < MinCalories,
		Macros:  MacroTargets(target, p.Goal),
		Profile: p,
	}
}
