// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware for the trivia API.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"triviaapi/internal/handlers"
	"triviaapi/internal/middleware"
	"triviaapi/internal/respond"
)

// healthTimeout bounds the database ping behind /health.
const healthTimeout = 2 * time.Second

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// New creates and returns the configured Chi router with all middleware
// and routes wired up. Unknown paths and unsupported methods answer with
// the JSON error envelope.
func New(api *handlers.API, db Pinger) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request. CORS runs inside the
	// recoverer so even a recovered panic carries Allow-Origin.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CORS)
	r.Use(middleware.SecureHeaders)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", healthHandler(db))

	r.Get("/categories", api.ListCategories)
	r.Get("/categories/{id:[0-9]+}/questions", api.CategoryQuestions)

	r.Route("/questions", func(r chi.Router) {
		r.Get("/", api.ListQuestions)
		r.Delete("/{id:[0-9]+}", api.DeleteQuestion)
		r.Post("/results", api.CreateQuestion)
		r.Post("/search", api.SearchQuestions)
	})

	r.Post("/quizzes", api.NextQuizQuestion)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusMethodNotAllowed)
}

// healthHandler reports 200 when the database answers a ping and 503
// otherwise.
func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			slog.Warn("health check failed", "error", err)
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
