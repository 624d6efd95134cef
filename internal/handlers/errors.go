// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"triviaapi/internal/middleware"
	"triviaapi/internal/respond"
)

// statusError ties a failure to the HTTP status it is reported as.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string {
	if e.err == nil {
		return http.StatusText(e.status)
	}
	return fmt.Sprintf("%d: %v", e.status, e.err)
}

func (e *statusError) Unwrap() error { return e.err }

// abort wraps err so that it is reported with status. err may be nil when
// the condition itself is the failure (an empty page, say).
func abort(status int, err error) error {
	return &statusError{status: status, err: err}
}

// statusOf returns the status err should be reported as. Errors that were
// not passed through abort are unhandled and map to 500.
func statusOf(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.status
	}
	return http.StatusInternalServerError
}

// fail logs err and writes the matching error envelope.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"request_id", middleware.RequestID(r.Context()),
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
	} else {
		slog.Debug("request rejected", attrs...)
	}
	respond.Error(w, status)
}
