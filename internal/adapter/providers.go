package adapter

import (
	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
)

// NewSuggestionProviders builds the provider chain in priority order:
// OpenAI first, then Gemini. A provider without an API key is not
// registered.
func NewSuggestionProviders(cfg config.Suggestions, log *logger.Logger) ([]SuggestionProvider, error) {
	providers := make([]SuggestionProvider, 0, 2)

	if cfg.OpenAI.APIKey != "" {
		openai, err := NewOpenAIProvider(cfg.OpenAI, cfg, log)
		if err != nil {
			return nil, err
		}
		providers = append(providers, openai)
	} else {
		log.Info().Str("func", "NewSuggestionProviders").Msg("openai api key not set, provider disabled")
	}

	if cfg.Gemini.APIKey != "" {
		gemini, err := NewGeminiProvider(cfg.Gemini, cfg, log)
		if err != nil {
			return nil, err
		}
		providers = append(providers, gemini)
	} else {
		log.Info().Str("func", "NewSuggestionProviders").Msg("gemini api key not set, provider disabled")
	}

	return providers, nil
}
