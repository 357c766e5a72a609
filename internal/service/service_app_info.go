package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-simple-server/internal/config"
	"github.com/MKhiriev/go-simple-server/internal/logger"
	"github.com/MKhiriev/go-simple-server/internal/utils"
	"github.com/MKhiriev/go-simple-server/models"
)

const welcomeMessage = "Welcome to Simple Hono Server!"

type appInfoService struct {
	appVersion  string
	environment string

	now func() time.Time
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().
		Str("version", cfg.Version).
		Str("environment", cfg.EnvironmentName()).
		Msg("app info service created")

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.EnvironmentName(),
		now:         time.Now,
	}, nil
}

func (s *appInfoService) Welcome(ctx context.Context) models.WelcomeResponse {
	logger.FromContext(ctx).Debug().Msg("building welcome response")

	return models.WelcomeResponse{
		Message:     welcomeMessage,
		Timestamp:   utils.FormatTimestamp(s.now()),
		Environment: s.environment,
		Version:     s.appVersion,
	}
}
