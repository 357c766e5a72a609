package main

import (
	"fmt"

	"github.com/MKhiriev/go-simple-server/internal/config"
	"github.com/MKhiriev/go-simple-server/internal/handler"
	"github.com/MKhiriev/go-simple-server/internal/logger"
	"github.com/MKhiriev/go-simple-server/internal/server"
	"github.com/MKhiriev/go-simple-server/internal/service"
	"github.com/MKhiriev/go-simple-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("simple-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	accessLog := logger.NewAccessLog(cfg.Log.AccessLogPath)

	handlers, err := handler.NewHandlers(services, accessLog, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Msgf("🚀 Server is running on port %d", cfg.Server.Port)
	log.Info().Msgf("📍 Environment: %s", cfg.App.EnvironmentName())
	log.Info().Msgf("🌐 Access your server at: http://localhost:%d", cfg.Server.Port)
	log.Info().Str("access_log", accessLog.Path()).Msg("access log enabled")

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
