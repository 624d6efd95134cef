// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"triviaapi/internal/models"
)

// QuestionStore handles all question-related database operations.
type QuestionStore struct {
	db *sql.DB
}

// NewQuestionStore creates a new QuestionStore with the given database connection.
func NewQuestionStore(db *sql.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

const questionColumns = `id, question, answer, category, difficulty`

// scanQuestion scans a row into a Question struct.
func scanQuestion(scanner interface{ Scan(...any) error }) (*models.Question, error) {
	var q models.Question
	if err := scanner.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
		return nil, err
	}
	return &q, nil
}

// queryQuestions runs a query selecting questionColumns and collects the rows.
func (s *QuestionStore) queryQuestions(ctx context.Context, op, query string, args ...any) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		items = append(items, *q)
	}
	return items, rows.Err()
}

// List returns every question ordered by ID.
func (s *QuestionStore) List(ctx context.Context) ([]models.Question, error) {
	return s.queryQuestions(ctx, "list questions",
		`SELECT `+questionColumns+` FROM questions ORDER BY id`)
}

// ListByCategory returns the questions of one category ordered by ID.
func (s *QuestionStore) ListByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	return s.queryQuestions(ctx, "list questions by category",
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id`, categoryID)
}

// Search returns questions whose text contains term, case-insensitively,
// ordered by ID. LIKE wildcards in term match literally.
func (s *QuestionStore) Search(ctx context.Context, term string) ([]models.Question, error) {
	return s.queryQuestions(ctx, "search questions",
		`SELECT `+questionColumns+` FROM questions WHERE question ILIKE $1 ORDER BY id`,
		"%"+escapeLike(term)+"%")
}

// Count returns the total number of questions.
func (s *QuestionStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// FindByID retrieves a question by ID. Returns ErrNotFound if it does not exist.
func (s *QuestionStore) FindByID(ctx context.Context, id int) (*models.Question, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find question by id: %w", err)
	}
	return q, nil
}

// Create inserts a new question and returns it with the generated ID.
func (s *QuestionStore) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING `+questionColumns,
		q.Question, q.Answer, q.Category, q.Difficulty,
	)
	created, err := scanQuestion(row)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return created, nil
}

// Delete removes a question by ID. Returns ErrNotFound if no row was
// deleted, which is also what a concurrent delete of the same ID sees.
func (s *QuestionStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters using the default backslash escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
