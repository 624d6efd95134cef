// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the trivia JSON API. Each exported method on
// API serves exactly one route; failures are reported as the fixed error
// envelope from package respond.
package handlers

import (
	"context"

	"triviaapi/internal/models"
)

// maxBodyBytes caps request bodies read by the JSON endpoints.
const maxBodyBytes = 1 << 20

// QuestionRepository is the question storage used by the API.
type QuestionRepository interface {
	List(ctx context.Context) ([]models.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]models.Question, error)
	Search(ctx context.Context, term string) ([]models.Question, error)
	Count(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id int) (*models.Question, error)
	Create(ctx context.Context, q *models.Question) (*models.Question, error)
	Delete(ctx context.Context, id int) error
}

// CategoryRepository is the category storage used by the API.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
}

// API groups the trivia route handlers and their storage dependencies.
type API struct {
	questions  QuestionRepository
	categories CategoryRepository
}

// NewAPI creates a new API handler group.
func NewAPI(questions QuestionRepository, categories CategoryRepository) *API {
	return &API{questions: questions, categories: categories}
}

// questionList is the envelope shared by the question listing endpoints.
type questionList struct {
	Success         bool               `json:"success"`
	Questions       []models.Question  `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      models.CategoryMap `json:"categories"`
	CurrentCategory *int               `json:"current_category"`
}

// categoryMap loads every category and indexes it by ID.
func (a *API) categoryMap(ctx context.Context) (models.CategoryMap, error) {
	cats, err := a.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewCategoryMap(cats), nil
}
