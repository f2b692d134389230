package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/utils"
)

const openAITemperature = 0.7

type openAIProvider struct {
	client *utils.HTTPClient
	model  string
	logger *logger.Logger
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model       string              `json:"model"`
	Messages    []openAIChatMessage `json:"messages"`
	N           int                 `json:"n"`
	Temperature float64             `json:"temperature"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIChatMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenAIProvider constructs a [SuggestionProvider] for the OpenAI chat
// completions API at cfg.BaseURL.
func NewOpenAIProvider(cfg config.OpenAI, suggestionsCfg config.Suggestions, log *logger.Logger) (SuggestionProvider, error) {
	client, err := newProviderClient(cfg.BaseURL, suggestionsCfg.ProviderTimeout)
	if err != nil {
		return nil, err
	}
	client.SetAuthToken(cfg.APIKey)

	return &openAIProvider{client: client, model: cfg.Model, logger: log}, nil
}

func (p *openAIProvider) Name() string {
	return "openai:" + p.model
}

// Generate implements [SuggestionProvider] with POST /chat/completions.
func (p *openAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var result openAIChatResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(openAIChatRequest{
			Model:       p.model,
			Messages:    []openAIChatMessage{{Role: "user", Content: prompt}},
			N:           1,
			Temperature: openAITemperature,
		}).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return result.Choices[0].Message.Content, nil
}
