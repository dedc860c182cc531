// Package ark generates reply text through an OpenAI-compatible chat
// completions endpoint.
package ark

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/luoyen/weibot/internal/adapters/httpclient"
	"github.com/luoyen/weibot/internal/ports"
)

const (
	DefaultBaseURL = "https://ark.cn-beijing.volces.com/api/v3"
	DefaultModel   = "doubao-seed-1-6-flash-250828"

	completionsPath  = "/chat/completions"
	maxResponseBytes = 1 << 20
)

var ErrEmptyCompletion = errors.New("completion contained no reply text")

type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	// Prompt is prefixed to the post text on every request.
	Prompt  string
	Timeout time.Duration
}

type Generator struct {
	cfg  Config
	http *http.Client
}

var _ ports.ReplyGenerator = (*Generator)(nil)

func NewGenerator(cfg Config, logger *slog.Logger) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("generator api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	return &Generator{
		cfg:  cfg,
		http: httpclient.New(logger, cfg.Timeout),
	}, nil
}

// Generate asks the model for a comment body. Any transport, decode, or
// empty-completion condition is an explicit error; callers must not
// submit anything for a failed generation.
func (g *Generator) Generate(ctx context.Context, rawText string) (string, error) {
	payload := chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: g.cfg.Prompt + rawText},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request completion: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request completion: unexpected status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(data, &completion); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
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
}
