package estimator

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/kburn/internal/config"
	"github.com/theirongolddev/kburn/internal/model"
)

func TestSimulated_KeywordMatch(t *testing.T) {
	s := NewSimulated(nil)
	tests := []struct {
		req      Request
		wantName string
		wantCal  int
	}{
		{Request{Filename: "lunch_salad.jpg"}, "Garden Salad", 120},
		{Request{Filename: "IMG_Veg_Box.png"}, "Garden Salad", 120},
		{Request{Filename: "big-hamburger.jpg"}, "Beef Burger", 540},
		{Request{Filename: "friday_pizza.heic"}, "Cheese Pizza Slice", 285},
		{Request{Filename: "banana.jpg"}, "Mixed Fruit Bowl", 95},
		{Request{Filename: "photo.jpg", Description: "roast chicken"}, "Grilled Chicken", 320},
		{Request{Description: "chicken with vegetables"}, "Grilled Chicken", 320},
		{Request{Filename: "burger.jpg", Description: "side salad"}, "Beef Burger", 540},
	}

	for _, tt := range tests {
		got, err := s.Estimate(context.Background(), tt.req)
		if err != nil {
			t.Fatalf("Estimate(%+v) error: %v", tt.req, err)
		}
		if got.FoodName != tt.wantName || got.Calories != tt.wantCal {
			t.Errorf("Estimate(%q, %q) = %s/%d, want %s/%d",
				tt.req.Filename, tt.req.Description, got.FoodName, got.Calories, tt.wantName, tt.wantCal)
		}
		if got.Source != model.SourceSimulated {
			t.Errorf("Source = %q, want %q", got.Source, model.SourceSimulated)
		}
		if got.Confidence <= 0 || got.Confidence > 1 {
			t.Errorf("Confidence = %f, want within (0, 1]", got.Confidence)
		}
	}
}

func TestSimulated_RandomFallbackIsSeeded(t *testing.T) {
	a := NewSimulated(rand.New(rand.NewPCG(1, 2)))
	b := NewSimulated(rand.New(rand.NewPCG(1, 2)))
	req := Request{Filename: "IMG_0001.jpg"}

	for i := 0; i < 5; i++ {
		ea, err := a.Estimate(context.Background(), req)
		if err != nil {
			t.Fatalf("Estimate: %v", err)
		}
		eb, _ := b.Estimate(context.Background(), req)
		if ea.FoodName != eb.FoodName {
			t.Fatalf("draw %d: %q != %q with identical seeds", i, ea.FoodName, eb.FoodName)
		}
		if _, ok := lookup(ea.FoodName); !ok {
			t.Errorf("random pick %q not from catalog", ea.FoodName)
		}
	}
}

func TestSimulated_NutrientsAreCopied(t *testing.T) {
	s := NewSimulated(nil)
	first, _ := s.Estimate(context.Background(), Request{Filename: "pizza.jpg"})
	first.Nutrients[0].Value = 999

	second, _ := s.Estimate(context.Background(), Request{Filename: "pizza.jpg"})
	if second.Nutrients[0].Value == 999 {
		t.Error("mutating an estimate changed the catalog")
	}
}

func TestSimulated_Errors(t *testing.T) {
	s := NewSimulated(nil)
	if _, err := s.Estimate(context.Background(), Request{}); !errors.Is(err, ErrEmptyRequest) {
		t.Errorf("empty request error = %v, want ErrEmptyRequest", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Estimate(ctx, Request{Filename: "salad.jpg"}); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled ctx error = %v, want context.Canceled", err)
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe("Burger_Night.JPG"); !strings.Contains(got, "hamburger") {
		t.Errorf("Describe(burger) = %q", got)
	}
	if got := Describe("IMG_4411.jpg"); got != unknownDescription {
		t.Errorf("Describe(unknown) = %q, want fallback", got)
	}
}

func TestEstimateEntry(t *testing.T) {
	s := NewSimulated(nil)
	est, _ := s.Estimate(context.Background(), Request{Filename: "burger.jpg"})
	e := est.Entry(time.Date(2026, 3, 4, 12, 30, 0, 0, time.Local))

	if e.Calories != 540 || e.Protein != 25 || e.Carbs != 40 || e.Fat != 33 {
		t.Errorf("entry = %+v", e)
	}
	if e.Date != "2026-03-04" || e.Time != "12:30" {
		t.Errorf("entry date/time = %s %s", e.Date, e.Time)
	}
}

func TestNew(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg := config.DefaultConfig()

	est, err := New(context.Background(), cfg, "")
	if err != nil {
		t.Fatalf("New(default): %v", err)
	}
	if est.Name() != model.SourceSimulated {
		t.Errorf("default provider = %q, want simulated", est.Name())
	}

	if _, err := New(context.Background(), cfg, "openai"); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("openai without key error = %v, want ErrNoAPIKey", err)
	}

	cfg.Estimator.APIKey = "sk-test"
	est, err = New(context.Background(), cfg, "OpenAI")
	if err != nil {
		t.Fatalf("New(openai): %v", err)
	}
	if est.Name() != model.SourceOpenAI {
		t.Errorf("provider = %q, want openai", est.Name())
	}

	if _, err := New(context.Background(), cfg, "vision9000"); err == nil {
		t.Error("unknown provider should error")
	}
}
