package budget

import (
	"math"
	"testing"

	"github.com/theirongolddev/kburn/internal/model"
)

func profile(g model.Gender, age int, weight, height float64, level model.ActivityLevel, goal model.Goal) model.Profile {
	return model.Profile{
		Gender:        g,
		Age:           age,
		Weight:        weight,
		Height:        height,
		ActivityLevel: level,
		Goal:          goal,
	}
}

func TestBMR(t *testing.T) {
	male := profile(model.GenderMale, 30, 70, 170, model.ActivityModerate, model.GoalMaintain)
	if got := BMR(male); got != 1617.5 {
		t.Errorf("male BMR = %.3f, want 1617.5", got)
	}

	female := male
	female.Gender = model.GenderFemale
	if got := BMR(female); got != 1451.5 {
		t.Errorf("female BMR = %.3f, want 1451.5", got)
	}

	other := male
	other.Gender = model.GenderOther
	if BMR(other) != BMR(female) {
		t.Errorf("other BMR = %.3f, want female constant %.3f", BMR(other), BMR(female))
	}
}

func TestDailyCalories_Pinned(t *testing.T) {
	// BMR 1617.5 * 1.55 = 2507.125 -> TDEE 2507.
	tests := []struct {
		goal model.Goal
		want int
	}{
		{model.GoalMaintain, 2507},
		{model.GoalLose, 2007},
		{model.GoalGain, 3007},
	}
	for _, tt := range tests {
		p := profile(model.GenderMale, 30, 70, 170, model.ActivityModerate, tt.goal)
		if got := DailyCalories(p); got != tt.want {
			t.Errorf("DailyCalories(%s) = %d, want %d", tt.goal, got, tt.want)
		}
	}
}

func TestDailyCalories_RoundsTDEEBeforeAdjustment(t *testing.T) {
	// Female, 25y, 60kg, 165cm: BMR = 600 + 1031.25 - 125 - 161 = 1345.25
	// light: 1345.25 * 1.375 = 1849.71875 -> 1850
	p := profile(model.GenderFemale, 25, 60, 165, model.ActivityLight, model.GoalLose)
	if got := TDEE(p); got != 1850 {
		t.Fatalf("TDEE = %d, want 1850", got)
	}
	if got := DailyCalories(p); got != 1350 {
		t.Fatalf("DailyCalories = %d, want 1350", got)
	}
}

func TestDailyCalories_Floor(t *testing.T) {
	p := profile(model.GenderFemale, 120, 30, 100, model.ActivitySedentary, model.GoalLose)
	if got := DailyCalories(p); got != MinCalories {
		t.Fatalf("DailyCalories = %d, want floor %d", got, MinCalories)
	}

	plan := Plan(p)
	if !plan.Clamped {
		t.Error("Plan.Clamped = false, want true")
	}
	if plan.Target != MinCalories {
		t.Errorf("Plan.Target = %d, want %d", plan.Target, MinCalories)
	}
}

func TestDailyCalories_NeverBelowMinimum(t *testing.T) {
	for _, g := range model.Genders {
		for _, level := range model.ActivityLevels {
			for _, goal := range model.Goals {
				for age := model.MinAge; age <= model.MaxAge; age += 9 {
					for w := model.MinWeight; w <= model.MaxWeight; w += 47 {
						for h := model.MinHeight; h <= model.MaxHeight; h += 30 {
							p := profile(g, age, w, h, level, goal)
							if got := DailyCalories(p); got < MinCalories {
								t.Fatalf("DailyCalories(%+v) = %d, below %d", p, got, MinCalories)
							}
						}
					}
				}
			}
		}
	}
}

func TestDailyCalories_Boundary(t *testing.T) {
	p := profile(model.GenderMale, 120, 500, 250, model.ActivityVeryActive, model.GoalGain)
	// BMR = 5000 + 1562.5 - 600 + 5 = 5967.5; *1.9 = 11338.25 -> 11338; +500
	if got := DailyCalories(p); got != 11838 {
		t.Fatalf("DailyCalories = %d, want 11838", got)
	}

	m := MacroTargets(DailyCalories(p), p.Goal)
	for name, v := range map[string]model.Macro{"protein": m.Protein, "carbs": m.Carbs, "fat": m.Fat} {
		if v.Grams <= 0 || v.Calories <= 0 {
			t.Errorf("%s = %+v, want positive", name, v)
		}
	}
}

func TestDailyCalories_Idempotent(t *testing.T) {
	p := profile(model.GenderOther, 41, 82.4, 177.3, model.ActivityActive, model.GoalLose)
	first := DailyCalories(p)
	for i := 0; i < 5; i++ {
		if got := DailyCalories(p); got != first {
			t.Fatalf("call %d = %d, first call = %d", i, got, first)
		}
	}
}

func TestMacroTargets_Maintain2000(t *testing.T) {
	m := MacroTargets(2000, model.GoalMaintain)

	want := model.MacroTargets{
		Protein: model.Macro{Grams: 150, Calories: 600, Percentage: 0.30},
		Carbs:   model.Macro{Grams: 225, Calories: 900, Percentage: 0.45},
		Fat:     model.Macro{Grams: 56, Calories: 504, Percentage: 0.25},
	}
	if m != want {
		t.Fatalf("MacroTargets(2000, maintain) = %+v, want %+v", m, want)
	}
}

func TestMacroTargets_Splits(t *testing.T) {
	tests := []struct {
		goal                model.Goal
		protein, carbs, fat float64
	}{
		{model.GoalLose, 0.35, 0.40, 0.25},
		{model.GoalMaintain, 0.30, 0.45, 0.25},
		{model.GoalGain, 0.30, 0.45, 0.25},
	}
	for _, tt := range tests {
		m := MacroTargets(2400, tt.goal)
		if m.Protein.Percentage != tt.protein || m.Carbs.Percentage != tt.carbs || m.Fat.Percentage != tt.fat {
			t.Errorf("%s split = %.2f/%.2f/%.2f, want %.2f/%.2f/%.2f", tt.goal,
				m.Protein.Percentage, m.Carbs.Percentage, m.Fat.Percentage,
				tt.protein, tt.carbs, tt.fat)
		}
		sum := m.Protein.Percentage + m.Carbs.Percentage + m.Fat.Percentage
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("%s percentages sum to %.6f, want 1.0", tt.goal, sum)
		}
	}
}

func TestMacroTargets_CaloriesFromGrams(t *testing.T) {
	for kcal := MinCalories; kcal <= 4000; kcal += 37 {
		for _, goal := range model.Goals {
			m := MacroTargets(kcal, goal)
			if m.Protein.Calories != m.Protein.Grams*KcalPerGramProtein ||
				m.Carbs.Calories != m.Carbs.Grams*KcalPerGramCarbs ||
				m.Fat.Calories != m.Fat.Grams*KcalPerGramFat {
				t.Fatalf("MacroTargets(%d, %s) calories not derived from grams: %+v", kcal, goal, m)
			}
			if m.Protein.Grams < 0 || m.Carbs.Grams < 0 || m.Fat.Grams < 0 {
				t.Fatalf("negative grams: %+v", m)
			}
		}
	}
}

func TestLoseSplit1800(t *testing.T) {
	m := MacroTargets(1800, model.GoalLose)
	// 1800*.35/4 = 157.5 -> 158; 1800*.40/4 = 180; 1800*.25/9 = 50
	if m.Protein.Grams != 158 || m.Carbs.Grams != 180 || m.Fat.Grams != 50 {
		t.Fatalf("lose 1800 grams = %d/%d/%d, want 158/180/50", m.Protein.Grams, m.Carbs.Grams, m.Fat.Grams)
	}
}
