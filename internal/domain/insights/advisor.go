// Package insights requests natural-language financial advice from an
// external chat-completion service based on aggregated category totals.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/upi-statement-analyzer/pkg/metrics"
)

// FailurePrefix starts every advice string produced from a failed call.
// The rest of the report is unaffected by an advice failure.
const FailurePrefix = "LLM failed: "

// Config holds the advisor's connection settings. The credential is
// injected here at construction time and never read from the environment
// inside the advisor itself.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// Timeout bounds the single round-trip. There is exactly one attempt
	// per analysis: no retries, no backoff.
	Timeout time.Duration
}

// Advisor builds prompts from category totals and forwards them to a
// chat-completion endpoint.
type Advisor struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAdvisor creates an advisor. A zero Timeout falls back to 60s so the
// blocking call is always bounded.
func NewAdvisor(cfg Config, logger *slog.Logger) *Advisor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	cfg.Timeout = timeout

	return &Advisor{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Advise sends the category totals to the advice service and returns its
// response verbatim. Any failure - network, auth, quota, malformed
// response - is converted into a user-visible "LLM failed: ..." string;
// the caller never sees an error.
func (a *Advisor) Advise(ctx context.Context, totalsByCategory map[string]decimal.Decimal) string {
	text, err := a.request(ctx, totalsByCategory)
	if err != nil {
		metrics.InsightFailures.Inc()
		a.logger.Warn("advice service call failed", slog.Any("error", err))
		return FailurePrefix + err.Error()
	}
	return text
}

func (a *Advisor) request(ctx context.Context, totalsByCategory map[string]decimal.Decimal) (string, error) {
	if a.cfg.APIKey == "" {
		return "", errors.New("api key not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: a.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: BuildPrompt(totalsByCategory)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimSuffix(a.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call advice service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("advice service error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advice service returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("advice service returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// BuildPrompt renders the category totals into the advice prompt. The
// summary lines are sorted by category so identical inputs always yield
// the identical prompt.
func BuildPrompt(totalsByCategory map[string]decimal.Decimal) string {
	categories := make([]string, 0, len(totalsByCategory))
	for category := range totalsByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString("Analyze the user's UPI transaction summary:\n")
	for _, category := range categories {
		fmt.Fprintf(&sb, "%s: %s\n", category, totalsByCategory[category].StringFixed(2))
	}
	sb.WriteString("\nGive:\n")
	sb.WriteString("- Monthly savings percentage\n")
	sb.WriteString("- Wasteful spending categories\n")
	sb.WriteString("- 3 personalized financial advice points\n")
	return sb.String()
}
