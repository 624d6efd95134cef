// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"triviaapi/internal/models"
	"triviaapi/internal/pagination"
	"triviaapi/internal/respond"
)

// ListQuestions returns one page of all questions in ID order.
func (a *API) ListQuestions(w http.ResponseWriter, r *http.Request) {
	resp, err := a.listQuestions(r.Context(), pagination.PageFromRequest(r))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, resp)
}

func (a *API) listQuestions(ctx context.Context, page int) (*questionList, error) {
	questions, err := a.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	current := pagination.Paginate(questions, page)
	if len(current) == 0 {
		return nil, abort(http.StatusNotFound, nil)
	}

	categories, err := a.categoryMap(ctx)
	if err != nil {
		return nil, err
	}
	total, err := a.questions.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &questionList{
		Success:        true,
		Questions:      current,
		TotalQuestions: total,
		Categories:     categories,
	}, nil
}

// DeleteQuestion removes a question and returns the refreshed listing for
// the requested page. A missing question is a bad request; deleting the last
// remaining question reports 404 because there is nothing left to list.
func (a *API) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}

	if _, err := a.questions.FindByID(ctx, id); err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}
	if err := a.questions.Delete(ctx, id); err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}
	slog.Info("question deleted", "id", id)

	remaining, err := a.questions.List(ctx)
	if err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}
	categories, err := a.categoryMap(ctx)
	if err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}
	if len(remaining) == 0 {
		fail(w, r, abort(http.StatusNotFound, nil))
		return
	}
	total, err := a.questions.Count(ctx)
	if err != nil {
		fail(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, questionList{
		Success:        true,
		Questions:      pagination.Paginate(remaining, pagination.PageFromRequest(r)),
		TotalQuestions: total,
		Categories:     categories,
	})
}

type createResponse struct {
	Success    bool           `json:"success"`
	QuestionID int            `json:"question_id"`
	Questions  map[string]any `json:"questions"`
}

// CreateQuestion stores a new question. The response echoes the request
// payload under "questions" rather than the stored row.
func (a *API) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeObject(w, r)
	if err != nil {
		fail(w, r, abort(http.StatusUnprocessableEntity, err))
		return
	}

	q, err := parseQuestion(payload)
	if err != nil {
		fail(w, r, abort(http.StatusUnprocessableEntity, err))
		return
	}

	created, err := a.questions.Create(r.Context(), q)
	if err != nil {
		fail(w, r, abort(http.StatusUnprocessableEntity, err))
		return
	}
	slog.Info("question created", "id", created.ID, "category", created.Category)

	respond.JSON(w, http.StatusCreated, createResponse{
		Success:    true,
		QuestionID: created.ID,
		Questions:  payload,
	})
}

type searchRequest struct {
	SearchTerm any `json:"searchTerm"`
}

type searchResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *int              `json:"current_category"`
}

// SearchQuestions returns one page of the questions whose text contains
// searchTerm, ignoring case. Numbers and booleans are searched for as
// text. An empty, zero or absent term matches nothing.
func (a *API) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}
	term, err := searchTerm(req.SearchTerm)
	if err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}

	matches := []models.Question{}
	if term != "" {
		found, err := a.questions.Search(r.Context(), term)
		if err != nil {
			fail(w, r, err)
			return
		}
		if found != nil {
			matches = found
		}
	}

	respond.JSON(w, http.StatusOK, searchResponse{
		Success:        true,
		Questions:      pagination.Paginate(matches, pagination.PageFromRequest(r)),
		TotalQuestions: len(matches),
	})
}

// searchTerm renders a decoded searchTerm value as search text. Empty
// values yield "". Arrays and objects are rejected.
func searchTerm(v any) (string, error) {
	if !truthy(v) {
		return "", nil
	}
	switch v := v.(type) {
	case string:
		return v, nil
	case json.Number, bool:
		return fmt.Sprint(v), nil
	default:
		return "", errBadSearchTerm
	}
}

// decodeObject reads the request body as a JSON object. Numbers are kept as
// json.Number so the payload can be echoed back unchanged.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errNotObject
	}
	if strings.TrimSpace(string(body[dec.InputOffset():])) != "" {
		return nil, errTrailingData
	}
	return payload, nil
}
