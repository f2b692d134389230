package service

import (
	"github.com/MKhiriev/mystery-message/internal/adapter"
	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/mailer"
	"github.com/MKhiriev/mystery-message/internal/store"
	"github.com/MKhiriev/mystery-message/models"
)

type Services struct {
	AuthService       AuthService
	InboxService      InboxService
	SuggestionService SuggestionService
	AppInfoService    AppInfoService
}

// Dependencies groups the outbound collaborators of the services.
type Dependencies struct {
	Storages  *store.Storages
	Mailer    mailer.Mailer
	Providers []adapter.SuggestionProvider
	Local     adapter.LocalSuggester
	Build     models.AppBuildInfo
}

// NewServices wires every service behind its validation wrapper.
func NewServices(deps Dependencies, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	auth := NewAuthService(deps.Storages.UserRepository, deps.Mailer, cfg.App, cfg.Verification, logger)
	inbox := NewInboxService(deps.Storages.UserRepository, deps.Storages.MessageRepository, logger)
	suggestions := NewSuggestionService(deps.Storages.UserRepository, deps.Storages.MessageRepository,
		deps.Providers, deps.Local, cfg.Suggestions.ProviderTimeout, logger)

	return &Services{
		AuthService:       NewAuthValidationService().Wrap(auth),
		InboxService:      NewInboxValidationService().Wrap(inbox),
		SuggestionService: NewSuggestionValidationService().Wrap(suggestions),
		AppInfoService:    appInfo,
	}, nil
}
