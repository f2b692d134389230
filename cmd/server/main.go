package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mystery-message/internal/adapter"
	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/handler"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/mailer"
	"github.com/MKhiriev/mystery-message/internal/server"
	"github.com/MKhiriev/mystery-message/internal/service"
	"github.com/MKhiriev/mystery-message/internal/store"
	"github.com/MKhiriev/mystery-message/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// fallbackVersion is served when neither APP_VERSION nor -ldflags set one.
const fallbackVersion = "dev"

func main() {
	printBuildInfo()
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("mystery-message-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.VersionOr(fallbackVersion)
	}

	log.Debug().
		Str("storage", cfg.Storage.Driver).
		Str("mail", cfg.Mail.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m, err := mailer.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	providers, err := adapter.NewSuggestionProviders(cfg.Suggestions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating suggestion providers")
	}
	if len(providers) == 0 {
		log.Warn().Msg("no suggestion providers configured, local suggestions only")
	}

	services, err := service.NewServices(service.Dependencies{
		Storages:  storages,
		Mailer:    m,
		Providers: providers,
		Local:     adapter.NewLocalSuggester(nil),
		Build:     build,
	}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
