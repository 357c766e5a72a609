package service

import (
	"context"

	"github.com/MKhiriev/go-simple-server/models"
)

// AppInfoService describes the running instance to clients.
type AppInfoService interface {
	// Welcome returns the greeting served by the root endpoint.
	Welcome(ctx context.Context) models.WelcomeResponse
}

// HealthService reports the liveness of the server.
type HealthService interface {
	// Check returns the payload served by the health endpoint.
	Check(ctx context.Context) models.HealthResponse
}
