package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-simple-server/internal/logger"
	"github.com/MKhiriev/go-simple-server/internal/utils"
	"github.com/MKhiriev/go-simple-server/models"
)

const (
	healthStatusOK = "OK"
	healthMessage  = "Server is running properly"
)

type healthService struct {
	now func() time.Time
}

func NewHealthService(logger *logger.Logger) HealthService {
	logger.Debug().Msg("health service created")

	return &healthService{
		now: time.Now,
	}
}

func (s *healthService) Check(ctx context.Context) models.HealthResponse {
	logger.FromContext(ctx).Debug().Msg("health check")

	return models.HealthResponse{
		Status:    healthStatusOK,
		Message:   healthMessage,
		Timestamp: utils.FormatTimestamp(s.now()),
	}
}
