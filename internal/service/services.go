package service

import (
	"fmt"

	"github.com/MKhiriev/go-simple-server/internal/config"
	"github.com/MKhiriev/go-simple-server/internal/logger"
)

type Services struct {
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(logger),
	}, nil
}
