// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema: a repository referencing a column that does not
// exist fails here with "no such column" instead of in a user's home
// directory.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/quitcard/internal/adapters/sqlite"
	"github.com/example/quitcard/internal/db"
	"github.com/example/quitcard/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// createTestStamp creates a stamp with a generated ID at the given card
// index and position.
func createTestStamp(t *testing.T, repo *sqlite.StampRepository, ctx context.Context, cardIndex, position int, reason string) *secondary.StampRecord {
	t.Helper()

	nextID, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}

	stamp := &secondary.StampRecord{
		ID:            nextID,
		CardIndex:     cardIndex,
		StampPosition: position,
		CardCapacity:  30,
		StampedAt:     time.Now().UnixMilli(),
		Reason:        reason,
	}

	if err := repo.Create(ctx, stamp); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	return stamp
}
