package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/quitcard/internal/ports/secondary"
)

// ReasonRepository implements secondary.ReasonRepository with SQLite.
type ReasonRepository struct {
	db *sql.DB
}

// NewReasonRepository creates a new SQLite reason repository.
func NewReasonRepository(db *sql.DB) *ReasonRepository {
	return &ReasonRepository{db: db}
}

// Create persists a new reusable reason.
func (r *ReasonRepository) Create(ctx context.Context, reason *secondary.ReasonRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO common_reasons (id, text, usage_count) VALUES (?, ?, ?)",
		reason.ID, reason.Text, reason.UsageCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create reason: %w", err)
	}

	return nil
}

// List retrieves all reasons, most used first.
func (r *ReasonRepository) List(ctx context.Context) ([]*secondary.ReasonRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, text, usage_count, created_at FROM common_reasons ORDER BY usage_count DESC, created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list reasons: %w", err)
	}
	defer rows.Close()

	var reasons []*secondary.ReasonRecord
	for rows.Next() {
		record, err := scanReason(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reason: %w", err)
		}
		reasons = append(reasons, record)
	}

	return reasons, rows.Err()
}

// GetByText retrieves a reason by its exact text.
func (r *ReasonRepository) GetByText(ctx context.Context, text string) (*secondary.ReasonRecord, error) {
	record, err := scanReason(r.db.QueryRowContext(ctx,
		"SELECT id, text, usage_count, created_at FROM common_reasons WHERE text = ?", text))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reason %q not found", text)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reason: %w", err)
	}
	return record, nil
}

// IncrementUsage bumps a reason's usage counter.
func (r *ReasonRepository) IncrementUsage(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE common_reasons SET usage_count = usage_count + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to update reason: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("reason %s not found", id)
	}

	return nil
}

// Delete removes a stored reason.
func (r *ReasonRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM common_reasons WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete reason: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("reason %s not found", id)
	}

	return nil
}

// DeleteAll removes every stored reason.
func (r *ReasonRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM common_reasons"); err != nil {
		return fmt.Errorf("failed to delete reasons: %w", err)
	}
	return nil
}

// GetNextID returns the next available reason ID.
func (r *ReasonRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM common_reasons",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next reason ID: %w", err)
	}

	return fmt.Sprintf("RSN-%03d", maxID+1), nil
}

func scanReason(row rowScanner) (*secondary.ReasonRecord, error) {
	var createdAt time.Time

	record := &secondary.ReasonRecord{}
	if err := row.Scan(&record.ID, &record.Text, &record.UsageCount, &createdAt); err != nil {
		return nil, err
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Ensure ReasonRepository implements the interface
var _ secondary.ReasonRepository = (*ReasonRepository)(nil)
