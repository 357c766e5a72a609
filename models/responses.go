package models

// WelcomeResponse is returned by the root endpoint. It greets the caller and
// describes the running instance.
type WelcomeResponse struct {
	// Message is a fixed human-readable greeting.
	Message string `json:"message"`

	// Timestamp is the moment the response was produced, formatted as
	// ISO-8601 in UTC with millisecond precision.
	Timestamp string `json:"timestamp"`

	// Environment is the configured environment name, "development" when
	// none is configured.
	Environment string `json:"environment"`

	// Version is the semantic version of the server (e.g. "1.0.0").
	Version string `json:"version"`
}

// HealthResponse is returned by the health endpoint. A response is only
// ever produced while the server is able to serve requests, so Status is
// always "OK".
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the body of every 404 and 500 response.
type ErrorResponse struct {
	// Error is the short error category, e.g. "Route not found".
	Error string `json:"error"`

	// Message is the human-readable detail. For internal errors it carries
	// the underlying error text only in the development environment.
	Message string `json:"message"`
}
