package model

import (
	"errors"
	"testing"
)

func TestParseActivityLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ActivityLevel
	}{
		{"sedentary", ActivitySedentary},
		{"Light", ActivityLight},
		{" moderate ", ActivityModerate},
		{"very_active", ActivityVeryActive},
		{"very-active", ActivityVeryActive},
		{"Very Active", ActivityVeryActive},
	}
	for _, tt := range tests {
		got, err := ParseActivityLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseActivityLevel(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseActivityLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseActivityLevel("couch"); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("ParseActivityLevel(couch) err = %v, want ErrInvalidProfile", err)
	}
}

func TestParseGenderAndGoal(t *testing.T) {
	if g, err := ParseGender("FEMALE"); err != nil || g != GenderFemale {
		t.Errorf("ParseGender(FEMALE) = %q, %v", g, err)
	}
	if _, err := ParseGender("robot"); err == nil {
		t.Error("ParseGender(robot) should fail")
	}
	if g, err := ParseGoal("gain"); err != nil || g != GoalGain {
		t.Errorf("ParseGoal(gain) = %q, %v", g, err)
	}
	if _, err := ParseGoal("bulk"); err == nil {
		t.Error("ParseGoal(bulk) should fail")
	}
}

func TestProfileValidate(t *testing.T) {
	if err := DefaultProfile().Validate(); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"too young", func(p *Profile) { p.Age = 12 }},
		{"too old", func(p *Profile) { p.Age = 121 }},
		{"too light", func(p *Profile) { p.Weight = 29.9 }},
		{"too heavy", func(p *Profile) { p.Weight = 500.1 }},
		{"too short", func(p *Profile) { p.Height = 99 }},
		{"too tall", func(p *Profile) { p.Height = 251 }},
		{"bad gender", func(p *Profile) { p.Gender = "x" }},
		{"bad activity", func(p *Profile) { p.ActivityLevel = "" }},
		{"bad goal", func(p *Profile) { p.Goal = "cut" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("Validate() = %v, want ErrInvalidProfile", err)
			}
		})
	}

	edge := DefaultProfile()
	edge.Age = MaxAge
	edge.Weight = MaxWeight
	if err := edge.Validate(); err != nil {
		t.Fatalf("upper bounds should be accepted: %v", err)
	}
}

func TestEstimateEntry(t *testing.T) {
	est := Estimate{
		FoodName: "Beef Burger",
		Calories: 540,
		Source:   SourceSimulated,
		Nutrients: []Nutrient{
			{Name: "Protein", Value: 25, Unit: "g"},
			{Name: "Carbohydrates", Value: 40, Unit: "g"},
			{Name: "Fat", Value: 33, Unit: "g"},
		},
	}
	at := mustTime(t, "2025-06-01 13:05")
	e := est.Entry(at)

	if e.Date != "2025-06-01" || e.Time != "13:05" {
		t.Errorf("Entry date/time = %s %s, want 2025-06-01 13:05", e.Date, e.Time)
	}
	if e.Protein != 25 || e.Carbs != 40 || e.Fat != 33 {
		t.Errorf("Entry macros = %v/%v/%v, want 25/40/33", e.Protein, e.Carbs, e.Fat)
	}
	if e.Source != SourceSimulated {
		t.Errorf("Entry source = %q", e.Source)
	}
}
