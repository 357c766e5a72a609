package handler

import (
	"github.com/MKhiriev/go-simple-server/internal/config"
	"github.com/MKhiriev/go-simple-server/internal/handler/http"
	"github.com/MKhiriev/go-simple-server/internal/logger"
	"github.com/MKhiriev/go-simple-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, accessLog *logger.AccessLog, cfg config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}
	if accessLog == nil {
		return nil, errNoAccessLogProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, accessLog, cfg, logger),
	}, nil
}
