// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// ErrRouteNotFound is reported when no route matches the request path and
// method. It is answered with HTTP 404.
var ErrRouteNotFound = errors.New("route not found")

// HandlerFault is a failure raised while serving a request: an error returned
// through [handlerFunc], a recovered panic, or a failed access log append. It
// is answered with HTTP 500.
type HandlerFault struct {
	// Err is the underlying failure. Its message is exposed to clients in
	// the development environment only.
	Err error

	// Stack is the goroutine stack captured at recovery time. It is empty
	// for returned errors.
	Stack []byte
}

func (f *HandlerFault) Error() string {
	return f.Err.Error()
}

func (f *HandlerFault) Unwrap() error {
	return f.Err
}

// faultFromPanic converts a recovered panic value into a [HandlerFault].
func faultFromPanic(v any, stack []byte) *HandlerFault {
	var err error
	switch value := v.(type) {
	case error:
		err = value
	case string:
		err = errors.New(value)
	default:
		err = fmt.Errorf("%v", value)
	}

	return &HandlerFault{Err: err, Stack: stack}
}
