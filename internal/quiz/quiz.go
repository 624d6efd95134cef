// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package quiz picks the next question to present in a quiz round.
package quiz

import (
	"errors"

	"triviaapi/internal/models"
)

// AllCategories is the category ID that selects questions from every category.
const AllCategories = 0

// AllCategoriesLabel is the display name reported for AllCategories.
const AllCategoriesLabel = "ALL"

// ErrNoCandidates is returned when there is nothing to choose from.
var ErrNoCandidates = errors.New("quiz: no candidate questions")

// Next returns the question at position len(previous) in candidates, which
// are expected in listing order. Once every position has been served it
// falls back to the first candidate, so a question can be served again.
// The IDs in previous are not consulted, only their count.
func Next(candidates []models.Question, previous []int) (models.Question, error) {
	if len(candidates) == 0 {
		return models.Question{}, ErrNoCandidates
	}
	if n := len(previous); len(candidates) > n {
		return candidates[n], nil
	}
	return candidates[0], nil
}

// Label returns the display name for a quiz category: AllCategoriesLabel for
// AllCategories, otherwise the type from categories. ok is false when the
// category is not in the map.
func Label(categoryID int, categories models.CategoryMap) (label string, ok bool) {
	if categoryID == AllCategories {
		return AllCategoriesLabel, true
	}
	label, ok = categories[categoryID]
	return label, ok
}
