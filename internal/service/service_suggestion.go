package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/mystery-message/internal/adapter"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/store"
	"github.com/MKhiriev/mystery-message/models"
)

const (
	// recentContextSize is how many of the owner's latest messages are fed to
	// the providers.
	recentContextSize = 5

	emptyContextPlaceholder = "No previous messages."
)

var listMarker = regexp.MustCompile(`^(?:[-*•]+|\d+[.)])\s*`)

var lengthHints = map[models.Length]string{
	models.LengthShort:  "short (one sentence, under 15 words)",
	models.LengthMedium: "medium length (one or two sentences)",
	models.LengthLong:   "longer (two or three sentences)",
}

type suggestionService struct {
	userRepository    store.UserRepository
	messageRepository store.MessageRepository
	providers         []adapter.SuggestionProvider
	local             adapter.LocalSuggester
	providerTimeout   time.Duration
	logger            *logger.Logger
}

// NewSuggestionService builds the fallback chain. providers are tried in the
// given order, local answers when all of them fail.
func NewSuggestionService(userRepository store.UserRepository, messageRepository store.MessageRepository,
	providers []adapter.SuggestionProvider, local adapter.LocalSuggester, providerTimeout time.Duration, logger *logger.Logger) SuggestionService {
	return &suggestionService{
		userRepository:    userRepository,
		messageRepository: messageRepository,
		providers:         providers,
		local:             local,
		providerTimeout:   providerTimeout,
		logger:            logger,
	}
}

// Suggest returns message starters for the handle's owner. Provider failures
// are logged and never returned; only an unknown handle or a store failure
// surfaces as an error.
func (s *suggestionService) Suggest(ctx context.Context, req models.SuggestRequest) ([]string, error) {
	log := logger.FromContext(ctx)
	opts := req.SuggestionOptions.WithDefaults()

	user, err := s.userRepository.FindUserByUsername(ctx, normalizeUsername(req.Username))
	if err != nil {
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	recent, err := s.messageRepository.RecentMessages(ctx, user.UserID, recentContextSize)
	if err != nil {
		log.Err(err).Str("func", "*suggestionService.Suggest").Int64("id", user.UserID).Msg("reading recent messages failed")
		return nil, fmt.Errorf("reading recent messages failed: %w", err)
	}

	prompt := buildPrompt(recent, opts)
	for _, provider := range s.providers {
		suggestions, err := s.attempt(ctx, provider, prompt, opts.Count)
		if err != nil {
			log.Warn().Err(err).Str("func", "*suggestionService.Suggest").Str("provider", provider.Name()).Msg("provider failed, trying next")
			continue
		}
		log.Debug().Str("func", "*suggestionService.Suggest").Str("provider", provider.Name()).Msg("suggestions generated")
		return suggestions, nil
	}

	log.Info().Str("func", "*suggestionService.Suggest").Msg("using local suggestions")
	return s.local.Suggest(opts.Count), nil
}

func (s *suggestionService) attempt(ctx context.Context, provider adapter.SuggestionProvider, prompt string, count int) ([]string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	text, err := provider.Generate(attemptCtx, prompt)
	if err != nil {
		return nil, err
	}

	suggestions := parseSuggestions(text, count)
	if len(suggestions) == 0 {
		return nil, adapter.ErrEmptyCompletion
	}
	return suggestions, nil
}

func buildPrompt(recent []models.Message, opts models.SuggestionOptions) string {
	contents := make([]string, 0, len(recent))
	for _, m := range recent {
		contents = append(contents, m.Content)
	}
	history := strings.Join(contents, "\n")
	if history == "" {
		history = emptyContextPlaceholder
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d %s, supportive, anonymous messages.\n", opts.Count, lengthHints[opts.Length])
	fmt.Fprintf(&b, "Tone: %s, relatable, comforting. Never romantic, flirty or cringe.\n", opts.Tone)
	b.WriteString("Return each message on a new line. No numbers, bullets or quotes.\n\n")
	b.WriteString("Context:\n")
	b.WriteString(history)
	b.WriteString("\n")
	return b.String()
}

// parseSuggestions splits a completion into at most count non-blank lines
// without list markers.
func parseSuggestions(text string, count int) []string {
	suggestions := make([]string, 0, count)
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(strings.TrimSpace(line), ""))
		if line == "" {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == count {
			break
		}
	}
	return suggestions
}
