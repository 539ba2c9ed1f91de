package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/caarlos0/env/v11"

	berrors "github.com/streambingo/streambingo/pkg/errors"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

// credentials holds the environment-supplied generator configuration.
// API_KEY is accepted as a legacy alias for GEMINI_API_KEY.
type credentials struct {
	APIKey    string `env:"GEMINI_API_KEY"`
	LegacyKey string `env:"API_KEY"`
	Model     string `env:"STREAMBINGO_GEMINI_MODEL"`
}

// GeminiConfig configures the hosted text-generation endpoint and HTTP
// behavior.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiClient generates bingo items through the Gemini REST API, requesting
// a strict JSON array-of-strings response.
type GeminiClient struct {
	cfg GeminiConfig
}

// NewGeminiClient builds a Gemini-backed Generator. A missing API key is a
// configuration error: the rest of the application stays usable, only
// generation is unavailable.
func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, berrors.NewConfigError("GEMINI_API_KEY", "generator credential is not configured", nil)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultModel
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &GeminiClient{cfg: cfg}, nil
}

// NewGeminiClientFromEnv builds a client from environment variables layered
// over the given defaults. Environment values win.
func NewGeminiClientFromEnv(defaults GeminiConfig) (*GeminiClient, error) {
	creds, err := env.ParseAs[credentials]()
	if err != nil {
		return nil, berrors.NewConfigError("GEMINI_API_KEY", "failed to read environment", err)
	}

	cfg := defaults
	if creds.APIKey != "" {
		cfg.APIKey = creds.APIKey
	} else if creds.LegacyKey != "" && cfg.APIKey == "" {
		cfg.APIKey = creds.LegacyKey
	}
	if creds.Model != "" {
		cfg.Model = creds.Model
	}
	return NewGeminiClient(cfg)
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string       `json:"responseMimeType"`
	ResponseSchema   geminiSchema `json:"responseSchema"`
}

type geminiSchema struct {
	Type  string        `json:"type"`
	Items *geminiSchema `json:"items,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate asks the model for exactly 24 short items for the topic. Short
// responses are padded with the placeholder and long ones truncated; a
// response that is not a JSON array of strings fails with a generation
// error and the caller's draft is left untouched.
func (c *GeminiClient) Generate(ctx context.Context, topic string) ([]string, error) {
	prompt := fmt.Sprintf(
		`Generate a list of exactly 24 short, punchy, and fun bingo square items for the topic: %q. `+
			`The items should be tropes, predictions, or common occurrences related to the topic. `+
			`Keep each item under 50 characters. `+
			`Do not include a free space.`, topic)

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: geminiSchema{
				Type:  "ARRAY",
				Items: &geminiSchema{Type: "STRING"},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, berrors.NewGenerationError(topic, fmt.Errorf("encode request: %w", err))
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, berrors.NewGenerationError(topic, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, berrors.NewGenerationError(topic, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, berrors.NewGenerationError(topic, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, berrors.NewGenerationError(topic, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, berrors.NewGenerationError(topic, fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, berrors.NewGenerationError(topic, fmt.Errorf("response has no candidates"))
	}

	var items []string
	text := parsed.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, berrors.NewGenerationError(topic, fmt.Errorf("response is not a JSON array of strings: %w", err))
	}

	return Normalize(items), nil
}
