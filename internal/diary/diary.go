// Package diary combines the stored profile and food log into daily intake figures.
package diary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/kburn/internal/budget"
	"github.com/theirongolddev/kburn/internal/model"
)

// ErrInvalidEntry wraps every entry validation failure.
var ErrInvalidEntry = errors.New("invalid entry")

// ProfileRepository persists the single user profile.
type ProfileRepository interface {
	Profile(ctx context.Context) (model.Profile, error)
	SaveProfile(ctx context.Context, p model.Profile) error
}

// EntryRepository is the append-only food log.
type EntryRepository interface {
	AddEntry(ctx context.Context, e model.FoodEntry) (model.FoodEntry, error)
	EntriesBetween(ctx context.Context, from, to string) ([]model.FoodEntry, error)
}

// Service answers diary questions against explicit repositories.
type Service struct {
	profiles ProfileRepository
	entries  EntryRepository
}

// New returns a diary service.
func New(profiles ProfileRepository, entries EntryRepository) *Service {
	return &Service{profiles: profiles, entries: entries}
}

// Plan returns the budget plan for the stored profile.
func (s *Service) Plan(ctx context.Context) (model.BudgetPlan, error) {
	p, err := s.profiles.Profile(ctx)
	if err != nil {
		return model.BudgetPlan{}, err
	}
	return budget.Plan(p), nil
}

// SaveProfile validates and stores a profile.
func (s *Service) SaveProfile(ctx context.Context, p model.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.profiles.SaveProfile(ctx, p)
}

// Log validates an entry and appends it to the diary.
func (s *Service) Log(ctx context.Context, e model.FoodEntry) (model.FoodEntry, error) {
	if err := ValidateEntry(e); err != nil {
		return e, err
	}
	return s.entries.AddEntry(ctx, e)
}

// Today returns today's intake against the current budget.
func (s *Service) Today(ctx context.Context, now time.Time) (model.DailyIntake, []model.FoodEntry, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return model.DailyIntake{}, nil, err
	}

	day := now.Format(model.DateLayout)
	entries, err := s.entries.EntriesBetween(ctx, day, day)
	if err != nil {
		return model.DailyIntake{}, nil, err
	}

	days := AggregateDays(entries, plan.Target, now, now)
	return days[0], entries, nil
}

// Days returns per-day intake from since to until, most recent first.
func (s *Service) Days(ctx context.Context, since, until time.Time) ([]model.DailyIntake, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.EntriesBetween(ctx, since.Format(model.DateLayout), until.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}
	return AggregateDays(entries, plan.Target, since, until), nil
}

// Entries returns raw diary entries from since to until, oldest first.
func (s *Service) Entries(ctx context.Context, since, until time.Time) ([]model.FoodEntry, error) {
	return s.entries.EntriesBetween(ctx, since.Format(model.DateLayout), until.Format(model.DateLayout))
}

// ValidateEntry checks the fields a diary entry must carry.
func ValidateEntry(e model.FoodEntry) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEntry)
	}
	if e.Calories < 0 || e.Protein < 0 || e.Carbs < 0 || e.Fat < 0 {
		return fmt.Errorf("%w: nutrition values must be non-negative", ErrInvalidEntry)
	}
	if _, err := time.Parse(model.DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidEntry, e.Date)
	}
	if e.Time != "" {
		if _, err := time.Parse(model.TimeLayout, e.Time); err != nil {
			return fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidEntry, e.Time)
		}
	}
	return nil
}
