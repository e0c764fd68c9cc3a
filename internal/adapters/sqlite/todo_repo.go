package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/quitcard/internal/ports/secondary"
)

// TodoRepository implements secondary.TodoRepository with SQLite.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new SQLite todo repository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create persists a new checklist item.
func (r *TodoRepository) Create(ctx context.Context, item *secondary.TodoRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO todo_items (id, title, done) VALUES (?, ?, ?)",
		item.ID, item.Title, item.Done,
	)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}

	return nil
}

// List retrieves all checklist items, oldest first.
func (r *TodoRepository) List(ctx context.Context) ([]*secondary.TodoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, done, created_at FROM todo_items ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []*secondary.TodoRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.TodoRecord{}
		if err := rows.Scan(&record.ID, &record.Title, &record.Done, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)

		todos = append(todos, record)
	}

	return todos, rows.Err()
}

// SetDone marks a checklist item done or not done.
func (r *TodoRepository) SetDone(ctx context.Context, id string, done bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE todo_items SET done = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		done, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("todo %s not found", id)
	}

	return nil
}

// Delete removes a checklist item.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todo_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("todo %s not found", id)
	}

	return nil
}

// DeleteAll removes every checklist item.
func (r *TodoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM todo_items"); err != nil {
		return fmt.Errorf("failed to delete todos: %w", err)
	}
	return nil
}

// GetNextID returns the next available todo ID.
func (r *TodoRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM todo_items",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next todo ID: %w", err)
	}

	return fmt.Sprintf("TODO-%03d", maxID+1), nil
}

// Ensure TodoRepository implements the interface
var _ secondary.TodoRepository = (*TodoRepository)(nil)
