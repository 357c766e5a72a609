// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when the service layer
// was not constructed. This is treated as a fatal misconfiguration and
// causes the application to fail at startup.
var errNoServicesProvided = errors.New("no services are provided")

// errNoAccessLogProvided is returned by NewHandlers when no access log
// writer is given; every request must be recorded.
var errNoAccessLogProvided = errors.New("no access log is provided")
