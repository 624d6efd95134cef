// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"triviaapi/internal/models"
	"triviaapi/internal/pagination"
	"triviaapi/internal/respond"
)

type categoriesResponse struct {
	Success    bool               `json:"success"`
	StatusCode int                `json:"status code"`
	Categories models.CategoryMap `json:"categories"`
}

// ListCategories returns every category as an id → type map. A storage
// failure is reported as 405.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categoryMap(r.Context())
	if err != nil {
		fail(w, r, abort(http.StatusMethodNotAllowed, err))
		return
	}

	respond.JSON(w, http.StatusOK, categoriesResponse{
		Success:    true,
		StatusCode: http.StatusOK,
		Categories: categories,
	})
}

// CategoryQuestions returns one page of the questions filed under the
// category in the URL. total_questions is the length of that page, not the
// size of the whole category.
func (a *API) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, abort(http.StatusNotFound, err))
		return
	}

	resp, err := a.categoryQuestions(r.Context(), id, pagination.PageFromRequest(r))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, resp)
}

func (a *API) categoryQuestions(ctx context.Context, categoryID, page int) (*questionList, error) {
	questions, err := a.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	// Emptiness is judged on the whole category, so a page past its end is
	// still a 200 with no questions.
	if len(questions) == 0 {
		return nil, abort(http.StatusNotFound, nil)
	}

	categories, err := a.categoryMap(ctx)
	if err != nil {
		return nil, abort(http.StatusBadRequest, err)
	}

	current := pagination.Paginate(questions, page)
	return &questionList{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(current),
		Categories:      categories,
		CurrentCategory: &categoryID,
	}, nil
}
