// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is a trivia category. Categories are seeded out of band and
// read-only from the API's perspective.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap maps a category ID to its display type. It is rebuilt from
// storage on every request and serializes as a JSON object keyed by ID.
type CategoryMap map[int]string

// NewCategoryMap builds a CategoryMap from a list of categories. Later
// entries win if an ID appears twice.
func NewCategoryMap(categories []Category) CategoryMap {
	m := make(CategoryMap, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
