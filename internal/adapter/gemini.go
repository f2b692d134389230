package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/utils"
)

type geminiProvider struct {
	client *utils.HTTPClient
	apiKey string
	models []string
	logger *logger.Logger
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiProvider constructs a [SuggestionProvider] for the Gemini
// generateContent API. cfg.Models are tried in order on every call.
func NewGeminiProvider(cfg config.Gemini, suggestionsCfg config.Suggestions, log *logger.Logger) (SuggestionProvider, error) {
	if len(cfg.Models) == 0 {
		return nil, errors.New("gemini provider requires at least one model")
	}

	client, err := newProviderClient(cfg.BaseURL, suggestionsCfg.ProviderTimeout)
	if err != nil {
		return nil, err
	}

	return &geminiProvider{client: client, apiKey: cfg.APIKey, models: cfg.Models, logger: log}, nil
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

// Generate implements [SuggestionProvider]. The first model that responds
// wins, even if its completion turns out to be empty.
func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	var errs []error
	for _, model := range p.models {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		text, err := p.generate(ctx, model, prompt)
		if err != nil {
			log.Warn().Err(err).Str("func", "*geminiProvider.Generate").Str("model", model).Msg("gemini model failed")
			errs = append(errs, fmt.Errorf("%s: %w", model, err))
			continue
		}

		if strings.TrimSpace(text) == "" {
			return "", ErrEmptyCompletion
		}
		return text, nil
	}

	return "", fmt.Errorf("%w: %w", ErrAllModelsFailed, errors.Join(errs...))
}

func (p *geminiProvider) generate(ctx context.Context, model, prompt string) (string, error) {
	var result geminiResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("model", model).
		SetQueryParam("key", p.apiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		}).
		SetResult(&result).
		Post("/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
