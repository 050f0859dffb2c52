package diary

import (
	"sort"
	"time"

	"github.com/theirongolddev/kburn/internal/model"
)

// Progress returns consumed/target clamped to 1.0 and the non-negative remainder.
func Progress(consumed, target int) (float64, int) {
	if target <= 0 {
		return 0, 0
	}
	pct := float64(consumed) / float64(target)
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}
	return pct, max(target-consumed, 0)
}

// AggregateDays totals entries per calendar day between since and until.
// Every day in the range is present, zero-filled, most recent first.
func AggregateDays(entries []model.FoodEntry, target int, since, until time.Time) []model.DailyIntake {
	dayMap := make(map[string]*model.DailyIntake)

	for _, e := range entries {
		ds, ok := dayMap[e.Date]
		if !ok {
			t, err := e.Day()
			if err != nil {
				continue
			}
			ds = &model.DailyIntake{Date: t}
			dayMap[e.Date] = ds
		}
		ds.Entries++
		ds.Calories += e.Calories
		ds.Protein += e.Protein
		ds.Carbs += e.Carbs
		ds.Fat += e.Fat
	}

	// Fill in every day in the range so charts show gaps as zeros
	day := startOfDay(since)
	end := startOfDay(until)
	for !day.After(end) {
		dayKey := day.Format(model.DateLayout)
		if _, ok := dayMap[dayKey]; !ok {
			dayMap[dayKey] = &model.DailyIntake{Date: day}
		}
		day = day.AddDate(0, 0, 1)
	}

	days := make([]model.DailyIntake, 0, len(dayMap))
	first := startOfDay(since)
	for _, ds := range dayMap {
		if ds.Date.Before(first) || ds.Date.After(end) {
			continue
		}
		ds.Budget = target
		ds.Percent, ds.Remaining = Progress(ds.Calories, target)
		days = append(days, *ds)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})

	return days
}

// Summarize aggregates a run of days.
func Summarize(days []model.DailyIntake) model.IntakeSummary {
	var s model.IntakeSummary
	var protein, carbs, fat float64

	s.Days = len(days)
	for _, d := range days {
		if s.Budget == 0 {
			s.Budget = d.Budget
		}
		if d.Entries == 0 {
			continue
		}
		s.LoggedDays++
		s.Entries += d.Entries
		s.TotalCalories += d.Calories
		protein += d.Protein
		carbs += d.Carbs
		fat += d.Fat
		if d.OverBudget() {
			s.DaysOverBudget++
		}
	}

	if s.LoggedDays > 0 {
		n := float64(s.LoggedDays)
		s.AvgCalories = float64(s.TotalCalories) / n
		s.AvgProtein = protein / n
		s.AvgCarbs = carbs / n
		s.AvgFat = fat / n
	}
	return s
}

func startOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
