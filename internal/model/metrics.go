package model

import "time"

// DailyIntake holds diary totals for one calendar day against the budget.
type DailyIntake struct {
	Date      time.Time `json:"date"`
	Entries   int       `json:"entries"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein_g"`
	Carbs     float64   `json:"carbs_g"`
	Fat       float64   `json:"fat_g"`
	Budget    int       `json:"budget"`
	Remaining int       `json:"remaining"` // never negative
	Percent   float64   `json:"percent"`   // consumed/budget, clamped to 1.0
}

// OverBudget reports whether intake exceeded the budget.
func (d DailyIntake) OverBudget() bool {
	return d.Budget > 0 && d.Calories > d.Budget
}

// IntakeSummary aggregates a run of days.
type IntakeSummary struct {
	Days           int
	LoggedDays     int
	Entries        int
	TotalCalories  int
	AvgCalories    float64 // per logged day
	AvgProtein     float64
	AvgCarbs       float64
	AvgFat         float64
	Budget         int
	DaysOverBudget int
}
