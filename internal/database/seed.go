// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// seedCategories are inserted in order so they receive IDs 1..6 on a fresh
// database.
var seedCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

type seedQuestion struct {
	question   string
	answer     string
	category   int
	difficulty int
}

var seedQuestions = []seedQuestion{
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5, 4},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", 6, 3},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
	{"Who invented Peanut Butter?", "George Washington Carver", 4, 2},
	{"What is the largest lake in Africa?", "Lake Victoria", 3, 2},
	{"The Taj Mahal is located in which Indian city?", "Agra", 3, 2},
	{"La Giaconda is better known as what?", "Mona Lisa", 2, 3},
	{"How many paintings did Van Gogh sell in his lifetime?", "One", 2, 4},
	{"Which Dutch graphic artist, initials M C, was a creator of optical illusions?", "Escher", 2, 1},
	{"What is the heaviest organ in the human body?", "The Liver", 1, 4},
	{"Who discovered penicillin?", "Alexander Fleming", 1, 3},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4},
}

// Seed populates the database with initial development data. It is a
// no-op when any category already exists.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	ids := make([]int, len(seedCategories))
	for i, typ := range seedCategories {
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO categories (type) VALUES ($1) RETURNING id`, typ,
		).Scan(&ids[i]); err != nil {
			return fmt.Errorf("seed insert category %q: %w", typ, err)
		}
	}

	for _, q := range seedQuestions {
		// Map the 1-based seed category onto whatever ID the row received.
		_, err := tx.ExecContext(ctx, `
			INSERT INTO questions (question, answer, category, difficulty)
			VALUES ($1, $2, $3, $4)
		`, q.question, q.answer, ids[q.category-1], q.difficulty)
		if err != nil {
			return fmt.Errorf("seed insert question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded",
		"categories", len(seedCategories),
		"questions", len(seedQuestions),
	)
	return nil
}
