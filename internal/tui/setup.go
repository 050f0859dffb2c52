package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/kburn/internal/model"

	"github.com/charmbracelet/huh"
)

// ProfileValues holds profile form state. Numeric fields stay strings so
// huh inputs can bind to them directly.
type ProfileValues struct {
	Gender   model.Gender
	Age      string
	Weight   string
	Height   string
	Activity model.ActivityLevel
	Goal     model.Goal
}

// ProfileValuesFrom seeds form state from an existing profile.
func ProfileValuesFrom(p model.Profile) ProfileValues {
	return ProfileValues{
		Gender:   p.Gender,
		Age:      strconv.Itoa(p.Age),
		Weight:   strconv.FormatFloat(p.Weight, 'f', -1, 64),
		Height:   strconv.FormatFloat(p.Height, 'f', -1, 64),
		Activity: p.ActivityLevel,
		Goal:     p.Goal,
	}
}

// Profile parses and validates the form state.
func (v ProfileValues) Profile() (model.Profile, error) {
	age, err := strconv.Atoi(strings.TrimSpace(v.Age))
	if err != nil {
		return model.Profile{}, fmt.Errorf("%w: age %q is not a whole number", model.ErrInvalidProfile, v.Age)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(v.Weight), 64)
	if err != nil {
		return model.Profile{}, fmt.Errorf("%w: weight %q is not a number", model.ErrInvalidProfile, v.Weight)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(v.Height), 64)
	if err != nil {
		return model.Profile{}, fmt.Errorf("%w: height %q is not a number", model.ErrInvalidProfile, v.Height)
	}

	p := model.Profile{
		Gender:        v.Gender,
		Age:           age,
		Weight:        weight,
		Height:        height,
		ActivityLevel: v.Activity,
		Goal:          v.Goal,
	}
	return p, p.Validate()
}

// ProfileGroups returns the huh groups that edit a profile, bound to v.
func ProfileGroups(v *ProfileValues) []*huh.Group {
	genderOpts := make([]huh.Option[model.Gender], len(model.Genders))
	for i, g := range model.Genders {
		genderOpts[i] = huh.NewOption(strings.ToUpper(string(g[:1]))+string(g[1:]), g)
	}
	activityOpts := make([]huh.Option[model.ActivityLevel], len(model.ActivityLevels))
	for i, l := range model.ActivityLevels {
		activityOpts[i] = huh.NewOption(l.Label(), l)
	}
	goalOpts := make([]huh.Option[model.Goal], len(model.Goals))
	for i, g := range model.Goals {
		goalOpts[i] = huh.NewOption(g.Label(), g)
	}

	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[model.Gender]().
				Title("Gender").
				Options(genderOpts...).
				Value(&v.Gender),
			huh.NewInput().
				Title("Age").
				Description(fmt.Sprintf("%d-%d years", model.MinAge, model.MaxAge)).
				Value(&v.Age).
				Validate(validateInt(model.MinAge, model.MaxAge)),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&v.Weight).
				Validate(validateFloat(model.MinWeight, model.MaxWeight)),
			huh.NewInput().
				Title("Height (cm)").
				Value(&v.Height).
				Validate(validateFloat(model.MinHeight, model.MaxHeight)),
		).Title("Your body").Description("Used to estimate your resting energy expenditure."),
		huh.NewGroup(
			huh.NewSelect[model.ActivityLevel]().
				Title("Activity level").
				Options(activityOpts...).
				Value(&v.Activity),
			huh.NewSelect[model.Goal]().
				Title("Goal").
				Options(goalOpts...).
				Value(&v.Goal),
		).Title("Your routine"),
	}
}

// NewProfileForm builds the standalone profile form.
func NewProfileForm(v *ProfileValues) *huh.Form {
	return huh.NewForm(ProfileGroups(v)...).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(true)
}

func validateInt(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func validateFloat(lo, hi float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return errors.New("enter a number")
		}
		if f < lo || f > hi {
			return fmt.Errorf("must be between %.0f and %.0f", lo, hi)
		}
		return nil
	}
}
