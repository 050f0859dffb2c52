package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/kburn/internal/diary"
	"github.com/theirongolddev/kburn/internal/model"

	"github.com/spf13/cobra"
)

func TestDiaryRange(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		from, to  string
		days      int
		wantSince string
		wantUntil string
		wantErr   bool
	}{
		{"defaults to window ending today", "", "", 7, "2026-03-04", "2026-03-10", false},
		{"zero days means today only", "", "", 0, "2026-03-10", "2026-03-10", false},
		{"explicit range", "2026-02-01", "2026-02-05", 7, "2026-02-01", "2026-02-05", false},
		{"to only", "", "2026-03-01", 3, "2026-02-27", "2026-03-01", false},
		{"bad from", "03/01/2026", "", 7, "", "", true},
		{"inverted", "2026-03-09", "2026-03-01", 7, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			since, until, err := diaryRange(now, tt.from, tt.to, tt.days)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("diaryRange: %v", err)
			}
			if got := since.Format(model.DateLayout); got != tt.wantSince {
				t.Errorf("since = %s, want %s", got, tt.wantSince)
			}
			if got := until.Format(model.DateLayout); got != tt.wantUntil {
				t.Errorf("until = %s, want %s", got, tt.wantUntil)
			}
		})
	}
}

func TestApplyProfileFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{Use: "set"}
		c.Flags().StringVar(&flagGender, "gender", "", "")
		c.Flags().IntVar(&flagAge, "age", 0, "")
		c.Flags().Float64Var(&flagWeight, "weight", 0, "")
		c.Flags().Float64Var(&flagHeight, "height", 0, "")
		c.Flags().StringVar(&flagActivity, "activity", "", "")
		c.Flags().StringVar(&flagGoal, "goal", "", "")
		return c
	}

	c := newCmd()
	if err := c.ParseFlags([]string{"--weight", "82.5", "--goal", "lose"}); err != nil {
		t.Fatal(err)
	}
	p, err := applyProfileFlags(c, model.DefaultProfile())
	if err != nil {
		t.Fatalf("applyProfileFlags: %v", err)
	}
	if p.Weight != 82.5 || p.Goal != model.GoalLose {
		t.Errorf("profile = %+v", p)
	}
	if p.Age != 30 || p.Height != 170 {
		t.Errorf("unchanged fields were overwritten: %+v", p)
	}

	c = newCmd()
	if err := c.ParseFlags([]string{"--activity", "couch"}); err != nil {
		t.Fatal(err)
	}
	if _, err := applyProfileFlags(c, model.DefaultProfile()); !errors.Is(err, model.ErrInvalidProfile) {
		t.Errorf("err = %v, want ErrInvalidProfile", err)
	}

	c = newCmd()
	if err := c.ParseFlags([]string{"--age", "7"}); err != nil {
		t.Fatal(err)
	}
	if _, err := applyProfileFlags(c, model.DefaultProfile()); !errors.Is(err, model.ErrInvalidProfile) {
		t.Errorf("age 7 err = %v, want ErrInvalidProfile", err)
	}
}

type fakeLogger struct {
	logged []model.FoodEntry
	today  model.DailyIntake
}

func (f *fakeLogger) Log(_ context.Context, e model.FoodEntry) (model.FoodEntry, error) {
	if err := diary.ValidateEntry(e); err != nil {
		return e, err
	}
	f.logged = append(f.logged, e)
	return e, nil
}

func (f *fakeLogger) Today(context.Context, time.Time) (model.DailyIntake, []model.FoodEntry, error) {
	return f.today, f.logged, nil
}

func TestLogEntry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	f := &fakeLogger{today: model.DailyIntake{Calories: 540, Budget: 2507, Remaining: 1967}}

	e := model.FoodEntry{Name: "Burger", Calories: 540, Date: "2026-03-10", Source: model.SourceManual}
	if err := logEntry(context.Background(), f, e, now); err != nil {
		t.Fatalf("logEntry: %v", err)
	}
	if len(f.logged) != 1 {
		t.Fatalf("logged %d entries, want 1", len(f.logged))
	}

	bad := model.FoodEntry{Name: "", Calories: 10, Date: "2026-03-10"}
	if err := logEntry(context.Background(), f, bad, now); !errors.Is(err, diary.ErrInvalidEntry) {
		t.Errorf("err = %v, want ErrInvalidEntry", err)
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := map[string]string{
		"sk-proj-abcdefghijklmnop": "sk-proj-...mnop",
		"sk-12345":                 "sk-1...",
		"abc":                      "****",
	}
	for in, want := range tests {
		if got := maskAPIKey(in); got != want {
			t.Errorf("maskAPIKey(%q) = %q, want %q", in, got, want)
		}
	}
}
