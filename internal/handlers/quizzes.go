// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"triviaapi/internal/models"
	"triviaapi/internal/pagination"
	"triviaapi/internal/quiz"
	"triviaapi/internal/respond"
)

var errBadQuizPayload = errors.New("quiz_category.id and previous_questions are required")

type quizResponse struct {
	QuizCategory string             `json:"quizCategory"`
	Categories   models.CategoryMap `json:"categories"`
	Question     models.Question    `json:"question"`
	Success      bool               `json:"success"`
}

// NextQuizQuestion picks the next question of a quiz round. Candidates are
// the same page the category listing (or, for category 0, the full listing)
// would return; every failure on the way is reported as 400.
func (a *API) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	categoryID, previous, err := parseQuizRequest(w, r)
	if err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}

	ctx := r.Context()
	page := pagination.PageFromRequest(r)

	var listing *questionList
	if categoryID != quiz.AllCategories {
		listing, err = a.categoryQuestions(ctx, categoryID, page)
	} else {
		listing, err = a.listQuestions(ctx, page)
	}
	if err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}

	next, err := quiz.Next(listing.Questions, previous)
	if err != nil {
		fail(w, r, abort(http.StatusBadRequest, err))
		return
	}

	label, ok := quiz.Label(categoryID, listing.Categories)
	if !ok {
		fail(w, r, abort(http.StatusBadRequest, fmt.Errorf("category %d has no name", categoryID)))
		return
	}

	respond.JSON(w, http.StatusOK, quizResponse{
		QuizCategory: label,
		Categories:   listing.Categories,
		Question:     next,
		Success:      true,
	})
}

// parseQuizRequest extracts quiz_category.id and previous_questions.
func parseQuizRequest(w http.ResponseWriter, r *http.Request) (int, []int, error) {
	payload, err := decodeObject(w, r)
	if err != nil {
		return 0, nil, err
	}

	qc, ok := payload["quiz_category"].(map[string]any)
	if !ok {
		return 0, nil, errBadQuizPayload
	}
	categoryID, err := intField(qc, "id")
	if err != nil {
		return 0, nil, err
	}

	raw, ok := payload["previous_questions"].([]any)
	if !ok {
		return 0, nil, errBadQuizPayload
	}
	previous := make([]int, 0, len(raw))
	for _, v := range raw {
		id, err := intValue(v)
		if err != nil {
			return 0, nil, fmt.Errorf("previous_questions: %w", err)
		}
		previous = append(previous, id)
	}

	return categoryID, previous, nil
}
