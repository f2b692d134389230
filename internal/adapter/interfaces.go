// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations that generate message
// suggestions.
//
// Every remote text generator implements [SuggestionProvider]. The package
// ships an OpenAI chat completions provider ([NewOpenAIProvider]) and a Gemini
// generateContent provider ([NewGeminiProvider]). [NewSuggestionProviders]
// registers them in priority order, skipping any provider without an API key.
// [LocalSuggester] is the bundled offline pool used when every provider fails.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of provider
// (e.g. [ErrTooManyRequests] for 429, [ErrUnauthorized] for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// SuggestionProvider is a remote text generator.
type SuggestionProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// Generate returns the raw completion text for prompt. Implementations
	// must honour ctx cancellation and return an error for an empty
	// completion.
	Generate(ctx context.Context, prompt string) (string, error)
}

// LocalSuggester picks suggestions without any network access.
type LocalSuggester interface {
	// Suggest returns count distinct entries, or the whole pool if it has
	// fewer than count entries.
	Suggest(count int) []string
}
