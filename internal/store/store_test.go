// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"triviaapi/internal/config"
	"triviaapi/internal/database"
	"triviaapi/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
func testDSN() string {
	cfg := config.Config{
		DBHost:     envOr("POSTGRES_HOST", "localhost"),
		DBPort:     envOr("POSTGRES_PORT", "5432"),
		DBUser:     envOr("POSTGRES_USER", "trivia"),
		DBPassword: envOr("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOr("POSTGRES_DB", "trivia"),
	}
	return cfg.DSN()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testCategory creates a uniquely named category and removes it, along with
// every question filed under it, when the test finishes.
func testCategory(t *testing.T, db *sql.DB) models.Category {
	t.Helper()

	var c models.Category
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO categories (type) VALUES ($1) RETURNING id, type`, "test-"+uuid.NewString()[:8],
	).Scan(&c.ID, &c.Type)
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM questions WHERE category = $1", c.ID)
		db.Exec("DELETE FROM categories WHERE id = $1", c.ID)
	})
	return c
}
