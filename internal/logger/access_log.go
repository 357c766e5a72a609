// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-simple-server/internal/utils"
)

// AccessLog appends one plain-text line per request to a file.
//
// Every line has the form "<ISO-8601 timestamp> - <message>\n". The file and
// its parent directories are created on demand, so removing the file while
// the server runs simply starts a new one.
//
// Writes are serialized: concurrent requests never interleave partial lines.
type AccessLog struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

// NewAccessLog returns an AccessLog appending to path.
func NewAccessLog(path string) *AccessLog {
	return &AccessLog{
		path: path,
		now:  time.Now,
	}
}

// Path returns the file the access log appends to.
func (a *AccessLog) Path() string {
	return a.path
}

// Write appends message as a single timestamped line.
func (a *AccessLog) Write(message string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("error creating access log directory: %w", err)
	}

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening access log: %w", err)
	}

	line := utils.FormatTimestamp(a.now()) + " - " + message + "\n"
	if _, err = f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("error writing access log: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("error closing access log: %w", err)
	}

	return nil
}
