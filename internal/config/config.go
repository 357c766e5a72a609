// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// EnvironmentDevelopment is the environment name that enables verbose error
// messages in HTTP responses.
const EnvironmentDevelopment = "development"

// StructuredConfig is the top-level configuration container for the
// server. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags, and an
// optional JSON file.
//
// Environment variable names are not prefixed: PORT and NODE_ENV are read
// as-is so the server honours the conventions of the platforms it runs on.
type StructuredConfig struct {
	// App holds application-level settings: the environment flag and the
	// version reported by the welcome endpoint.
	App App

	// Server holds listen address and timeout settings for the HTTP server.
	Server Server

	// Log holds settings for the process log and the access log file.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the environment and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the raw environment flag. Only the exact value
	// "development" enables verbose error messages; an empty value is
	// reported as "development" by the welcome endpoint but keeps error
	// messages generic.
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV"`

	// Version is the semantic version string reported by the welcome
	// endpoint (e.g. "1.0.0").
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all
	// interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// ReadHeaderTimeout bounds the time allowed to read request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// Log holds settings for the process log and the access log file.
type Log struct {
	// AccessLogPath is the file every request appends one line to.
	// Defaults to server.log next to the executable.
	// Env: ACCESS_LOG_PATH
	AccessLogPath string `env:"ACCESS_LOG_PATH"`

	// Level is the zerolog level name of the process log (e.g. "info").
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Default values applied to fields no source has set.
const (
	DefaultPort              = 3000
	DefaultVersion           = "1.0.0"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultLogLevel          = "debug"
	DefaultAccessLogFile     = "server.log"
)

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// EnvironmentName returns the environment reported to clients. An unset
// environment is reported as "development".
func (a App) EnvironmentName() string {
	if a.Environment == "" {
		return EnvironmentDevelopment
	}
	return a.Environment
}

// IsDevelopment reports whether the environment flag is explicitly set to
// "development".
func (a App) IsDevelopment() bool {
	return a.Environment == EnvironmentDevelopment
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
