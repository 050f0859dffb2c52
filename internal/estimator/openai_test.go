package estimator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func chatServer(t *testing.T, status int, body string, check func(*http.Request, chatRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			var req chatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decoding request: %v", err)
			}
			check(r, req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func chatBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestOpenAI_Estimate(t *testing.T) {
	content := "Estimated Calories: 450 kcal\nBreakdown: bun 150 kcal, patty 250 kcal, cheese 50 kcal."
	srv := chatServer(t, http.StatusOK, chatBody(content), func(r *http.Request, req chatRequest) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if req.Model != "gpt-4o" {
			t.Errorf("model = %q, want gpt-4o", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("messages = %+v", req.Messages)
		}
		if !strings.Contains(req.Messages[1].Content, "cheeseburger with fries") {
			t.Errorf("user prompt missing description: %q", req.Messages[1].Content)
		}
	})

	c := NewOpenAI("sk-test", srv.URL, "")
	est, err := c.Estimate(context.Background(), Request{Description: "cheeseburger with fries"})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est.Calories != 450 {
		t.Errorf("Calories = %d, want 450", est.Calories)
	}
	if est.FoodName != "Beef Burger" {
		t.Errorf("FoodName = %q, want Beef Burger", est.FoodName)
	}
	if !strings.HasPrefix(est.Explanation, "bun 150 kcal") {
		t.Errorf("Explanation = %q, want prefixes stripped", est.Explanation)
	}
	if est.Confidence == 0 {
		t.Error("Confidence should be set when calories were parsed")
	}
}

func TestOpenAI_DescriptionFromFilename(t *testing.T) {
	tests := []struct {
		filename   string
		wantPrompt string
		wantName   string
	}{
		{"pizza.jpg", "cheese pizza", "Cheese Pizza Slice"},
		{"burger.jpg", "hamburger on a sesame seed bun", "Beef Burger"},
		{"chicken.jpg", "Grilled chicken breast", "Grilled Chicken"},
		{"IMG_0042.jpg", "mixed ingredients", "IMG_0042.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			srv := chatServer(t, http.StatusOK, chatBody("About 800 kcal."), func(_ *http.Request, req chatRequest) {
				if !strings.Contains(req.Messages[1].Content, tt.wantPrompt) {
					t.Errorf("prompt = %q, want filename-derived description", req.Messages[1].Content)
				}
			})

			est, err := NewOpenAI("sk-test", srv.URL, "gpt-test").Estimate(context.Background(),
				Request{Filename: tt.filename, Image: []byte{1}})
			if err != nil {
				t.Fatalf("Estimate: %v", err)
			}
			if est.Calories != 800 || est.FoodName != tt.wantName {
				t.Errorf("got %s/%d, want %s/800", est.FoodName, est.Calories, tt.wantName)
			}
		})
	}
}

func TestFoodNameFrom(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		desc string
		want string
	}{
		{"filename wins over description", Request{Filename: "salad.jpg", Description: "burger"}, "burger", "Garden Salad"},
		{"description when filename is unknown", Request{Filename: "IMG_1.jpg", Description: "chicken with vegetables"}, "chicken with vegetables", "Grilled Chicken"},
		{"unknown text is truncated", Request{Description: "Lentil soup. Served hot."}, "Lentil soup. Served hot.", "Lentil soup"},
		{"truncation keeps runes whole", Request{}, strings.Repeat("é", 60), strings.Repeat("é", maxNameRunes)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foodNameFrom(tt.req, tt.desc)
			if got != tt.want {
				t.Errorf("foodNameFrom = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("foodNameFrom returned invalid UTF-8 %q", got)
			}
		})
	}
}

func TestOpenAI_NoCaloriesInReply(t *testing.T) {
	srv := chatServer(t, http.StatusOK, chatBody("I cannot tell from that description."), nil)

	est, err := NewOpenAI("sk-test", srv.URL, "").Estimate(context.Background(), Request{Description: "something"})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est.Calories != 0 || est.Confidence != 0 {
		t.Errorf("got calories=%d confidence=%f, want zeros", est.Calories, est.Confidence)
	}
	if est.Explanation == "" {
		t.Error("explanation should carry the model reply")
	}
}

func TestOpenAI_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
	}{
		{http.StatusUnauthorized, `{}`, ErrUnauthorized},
		{http.StatusForbidden, `{}`, ErrUnauthorized},
		{http.StatusTooManyRequests, `{}`, ErrRateLimited},
	}
	for _, tt := range tests {
		srv := chatServer(t, tt.status, tt.body, nil)
		_, err := NewOpenAI("sk-test", srv.URL, "").Estimate(context.Background(), Request{Description: "x"})
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: err = %v, want %v", tt.status, err, tt.want)
		}
	}

	srv := chatServer(t, http.StatusInternalServerError, `{"error":{"message":"model overloaded"}}`, nil)
	_, err := NewOpenAI("sk-test", srv.URL, "").Estimate(context.Background(), Request{Description: "x"})
	if err == nil || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("500 err = %v, want API message", err)
	}
}

func TestOpenAI_Preconditions(t *testing.T) {
	if _, err := NewOpenAI("  ", "", "").Estimate(context.Background(), Request{Description: "x"}); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("blank key err = %v, want ErrNoAPIKey", err)
	}
	if _, err := NewOpenAI("sk", "", "").Estimate(context.Background(), Request{}); !errors.Is(err, ErrEmptyRequest) {
		t.Errorf("empty request err = %v, want ErrEmptyRequest", err)
	}
}

func TestParseCalories(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"Estimated Calories: 450 kcal", 450, true},
		{"roughly 320.6 calories total", 321, true},
		{"650 KCAL", 650, true},
		{"no number here", 0, false},
		{"2 slices", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseCalories(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseCalories(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCleanExplanation(t *testing.T) {
	got := cleanExplanation("  Estimated Calories: 500 kcal\n\nBreakdown: rice 200, chicken 300 ")
	if got != "rice 200, chicken 300" {
		t.Errorf("cleanExplanation = %q", got)
	}
}
