package model

// Macro is the target for one macronutrient.
type Macro struct {
	Grams      int     `json:"grams"`
	Calories   int     `json:"calories"`
	Percentage float64 `json:"percentage"` // 0.0-1.0 share of the calorie target
}

// MacroTargets is the daily macro split derived from a calorie target.
type MacroTargets struct {
	Protein Macro `json:"protein"`
	Carbs   Macro `json:"carbs"`
	Fat     Macro `json:"fat"`
}

// BudgetPlan holds every derived number for a profile.
type BudgetPlan struct {
	BMR     float64      `json:"bmr"`
	TDEE    int          `json:"tdee"`
	Target  int          `json:"target"`
	Clamped bool         `json:"clamped"` // target raised to the safety minimum
	Macros  MacroTargets `json:"macros"`
	Profile Profile      `json:"profile"`
}
