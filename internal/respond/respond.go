// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package respond writes JSON responses, including the fixed error envelope
// shared by every endpoint.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the body of every error response.
type Envelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// messages holds the client-facing text for each supported error status.
var messages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not Found Anything",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable Request",
	http.StatusInternalServerError: "Internal Server Error",
}

// Message returns the envelope message for status. Statuses outside the
// supported set are reported as 500.
func Message(status int) (int, string) {
	if msg, ok := messages[status]; ok {
		return status, msg
	}
	return http.StatusInternalServerError, messages[http.StatusInternalServerError]
}

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("encode json response", "status", status, "error", err)
	}
}

// Error writes the error envelope for status.
func Error(w http.ResponseWriter, status int) {
	status, msg := Message(status)
	JSON(w, status, Envelope{Success: false, Error: status, Message: msg})
}
