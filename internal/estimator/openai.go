package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/kburn/internal/model"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o"
	requestTimeout       = 30 * time.Second
	maxBodySize          = 1 << 20 // 1 MB
)

var (
	caloriesRe      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:kcal|calories)`)
	caloriesPrefix  = regexp.MustCompile(`(?i)^Estimated Calories:[\s\d]+kcal`)
	breakdownPrefix = regexp.MustCompile(`(?i)^Breakdown:`)
)

// OpenAI asks a chat-completions endpoint to estimate calories from a meal description.
type OpenAI struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewOpenAI creates a client. Empty baseURL and model use the public defaults.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAI{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		Index        int         `json:"index"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Name implements Estimator.
func (c *OpenAI) Name() string { return model.SourceOpenAI }

// Estimate implements Estimator. Without an explicit description, one is
// derived from the filename before asking the model.
func (c *OpenAI) Estimate(ctx context.Context, req Request) (model.Estimate, error) {
	if c.apiKey == "" {
		return model.Estimate{}, ErrNoAPIKey
	}
	if req.empty() {
		return model.Estimate{}, ErrEmptyRequest
	}

	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		desc = Describe(req.Filename)
	}

	content, err := c.complete(ctx, []chatMessage{
		{Role: "system", Content: "You are a nutrition expert."},
		{Role: "user", Content: fmt.Sprintf(
			"A user uploaded a food photo. Based on the description: '%s', estimate total calories and give a short explanation.", desc)},
	})
	if err != nil {
		return model.Estimate{}, err
	}

	calories, ok := parseCalories(content)
	est := model.Estimate{
		FoodName:    foodNameFrom(req, desc),
		Calories:    calories,
		Description: desc,
		Explanation: cleanExplanation(content),
		Source:      model.SourceOpenAI,
	}
	if ok {
		est.Confidence = 0.5
	}
	return est, nil
}

// complete posts a chat completion and returns the first choice's content.
func (c *OpenAI) complete(ctx context.Context, messages []chatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("estimator: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("estimator: creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "kburn/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("estimator: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("estimator: reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		if json.Unmarshal(body, &ae) == nil && ae.Error.Message != "" {
			return "", fmt.Errorf("estimator: API error (status %d): %s", resp.StatusCode, ae.Error.Message)
		}
		return "", fmt.Errorf("estimator: unexpected status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("estimator: parsing response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", nil
	}
	return cr.Choices[0].Message.Content, nil
}

// parseCalories pulls the first "N kcal" or "N calories" figure out of free text.
func parseCalories(content string) (int, bool) {
	m := caloriesRe.FindStringSubmatch(content)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return int(v + 0.5), true
}

// cleanExplanation strips the leading summary headers models tend to emit.
func cleanExplanation(content string) string {
	s := strings.TrimSpace(caloriesPrefix.ReplaceAllString(strings.TrimSpace(content), ""))
	return strings.TrimSpace(breakdownPrefix.ReplaceAllString(s, ""))
}

// maxNameRunes bounds a food name taken from free text.
const maxNameRunes = 48

func foodNameFrom(req Request, desc string) string {
	if f, ok := match(req); ok {
		return f.name
	}
	if req.Filename != "" {
		return req.Filename
	}
	name, _, _ := strings.Cut(desc, ".")
	if r := []rune(name); len(r) > maxNameRunes {
		name = string(r[:maxNameRunes])
	}
	return strings.TrimSpace(name)
}
