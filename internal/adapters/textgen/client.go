// Package textgen provides a client for the OpenAI compatible generation service
package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/logger"
)

const (
	defaultTimeout = 60 * time.Second
	defaultModel   = "gpt-4o-mini"
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Model   string

	// Timeout bounds a single completion call
	// completions are slow so the default is generous
	Timeout time.Duration
}

// Client issues non streaming chat completions
// it never retries, callers own the retry decision
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("textgen"),
		now:  time.Now,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends one chat completion and returns the trimmed text
// any transport or API failure surfaces as an upstream error
func (c *Client) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		Stream:      false,
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "textgen marshal request failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "textgen new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUpstream, "generation service unreachable")
	}
	defer func() { _ = resp.Body.Close() }()
	lat := c.now().Sub(start)

	c.log.Debug().
		Str("model", c.opts.Model).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("textgen http response")

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUpstream, "generation service read failed")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", perr.Upstreamf("generation service status %d body %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", perr.Upstreamf("generation service returned malformed json: %v", err)
	}
	if out.Error != nil {
		return "", perr.Upstreamf("generation service error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", perr.Upstreamf("generation service returned no choices")
	}

	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", perr.Upstreamf("generation service returned empty content")
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
