// Package model defines the profile, diary, and nutrition types shared across kburn.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Gender selects the BMR constant.
type Gender string

// Genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel scales BMR into daily expenditure.
type ActivityLevel string

// Activity levels.
const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal is the weight direction the user is aiming for.
type Goal string

// Goals.
const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// Genders, ActivityLevels and Goals list every valid value in display order.
var (
	Genders        = []Gender{GenderMale, GenderFemale, GenderOther}
	ActivityLevels = []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive}
	Goals          = []Goal{GoalLose, GoalMaintain, GoalGain}
)

// Plausible ranges accepted at the input boundary.
const (
	MinAge    = 13
	MaxAge    = 120
	MinWeight = 30.0
	MaxWeight = 500.0
	MinHeight = 100.0
	MaxHeight = 250.0
)

// ErrInvalidProfile wraps every profile validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is the body profile the calorie budget is computed from.
type Profile struct {
	Gender        Gender        `json:"gender"`
	Age           int           `json:"age"`
	Weight        float64       `json:"weight"` // kg
	Height        float64       `json:"height"` // cm
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// DefaultProfile is used until the user saves their own.
func DefaultProfile() Profile {
	return Profile{
		Gender:        GenderMale,
		Age:           30,
		Weight:        70,
		Height:        170,
		ActivityLevel: ActivityModerate,
		Goal:          GoalMaintain,
	}
}

// Validate checks enums and numeric ranges.
func (p Profile) Validate() error {
	if _, err := ParseGender(string(p.Gender)); err != nil {
		return err
	}
	if _, err := ParseActivityLevel(string(p.ActivityLevel)); err != nil {
		return err
	}
	if _, err := ParseGoal(string(p.Goal)); err != nil {
		return err
	}
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("%w: age %d outside %d-%d", ErrInvalidProfile, p.Age, MinAge, MaxAge)
	}
	if p.Weight < MinWeight || p.Weight > MaxWeight {
		return fmt.Errorf("%w: weight %.1fkg outside %.0f-%.0f", ErrInvalidProfile, p.Weight, MinWeight, MaxWeight)
	}
	if p.Height < MinHeight || p.Height > MaxHeight {
		return fmt.Errorf("%w: height %.1fcm outside %.0f-%.0f", ErrInvalidProfile, p.Height, MinHeight, MaxHeight)
	}
	return nil
}

// ParseGender accepts a gender name, case-insensitively.
func ParseGender(s string) (Gender, error) {
	g := Gender(normalize(s))
	for _, v := range Genders {
		if g == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, s)
}

// ParseActivityLevel accepts a level name; "very-active" and "very active" map to very_active.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	l := ActivityLevel(normalize(s))
	for _, v := range ActivityLevels {
		if l == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, s)
}

// ParseGoal accepts a goal name.
func ParseGoal(s string) (Goal, error) {
	g := Goal(normalize(s))
	for _, v := range Goals {
		if g == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, s)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// Label returns a human-readable name for the activity level.
func (l ActivityLevel) Label() string {
	switch l {
	case ActivitySedentary:
		return "Sedentary (little or no exercise)"
	case ActivityLight:
		return "Light (1-3 days/week)"
	case ActivityModerate:
		return "Moderate (3-5 days/week)"
	case ActivityActive:
		return "Active (6-7 days/week)"
	case ActivityVeryActive:
		return "Very active (hard daily exercise)"
	}
	return string(l)
}

// Label returns a human-readable name for the goal.
func (g Goal) Label() string {
	switch g {
	case GoalLose:
		return "Lose weight"
	case GoalMaintain:
		return "Maintain weight"
	case GoalGain:
		return "Gain weight"
	}
	return string(g)
}
