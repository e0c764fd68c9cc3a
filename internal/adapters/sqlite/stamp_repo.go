// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/quitcard/internal/ports/secondary"
)

const stampColumns = "id, card_index, stamp_position, card_capacity, stamped_at, reason, special, created_at, updated_at"

// StampRepository implements secondary.StampRepository with SQLite.
type StampRepository struct {
	db *sql.DB
}

// NewStampRepository creates a new SQLite stamp repository.
func NewStampRepository(db *sql.DB) *StampRepository {
	return &StampRepository{db: db}
}

// Create persists a new stamp record.
func (r *StampRepository) Create(ctx context.Context, stamp *secondary.StampRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO stamp_records (id, card_index, stamp_position, card_capacity, stamped_at, reason, special) VALUES (?, ?, ?, ?, ?, ?, ?)",
		stamp.ID, stamp.CardIndex, stamp.StampPosition, stamp.CardCapacity, stamp.StampedAt, stamp.Reason, stamp.Special,
	)
	if err != nil {
		return fmt.Errorf("failed to create stamp: %w", err)
	}

	return nil
}

// GetByID retrieves a stamp by its ID.
func (r *StampRepository) GetByID(ctx context.Context, id string) (*secondary.StampRecord, error) {
	record, err := scanStamp(r.db.QueryRowContext(ctx,
		"SELECT "+stampColumns+" FROM stamp_records WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("stamp %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stamp: %w", err)
	}
	return record, nil
}

// List retrieves all stamps, newest first.
func (r *StampRepository) List(ctx context.Context) ([]*secondary.StampRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+stampColumns+" FROM stamp_records ORDER BY stamped_at DESC, LENGTH(id) DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list stamps: %w", err)
	}
	defer rows.Close()

	return collectStamps(rows)
}

// ListByCard retrieves the stamps captured on one card, newest first.
func (r *StampRepository) ListByCard(ctx context.Context, cardIndex int) ([]*secondary.StampRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+stampColumns+" FROM stamp_records WHERE card_index = ? ORDER BY stamped_at DESC, LENGTH(id) DESC, id DESC",
		cardIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list stamps for card %d: %w", cardIndex, err)
	}
	defer rows.Close()

	return collectStamps(rows)
}

// UpdateReason replaces a stamp's reason text.
func (r *StampRepository) UpdateReason(ctx context.Context, id, reason string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE stamp_records SET reason = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		reason, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update stamp: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("stamp %s not found", id)
	}

	return nil
}

// Delete removes a stamp from persistence.
func (r *StampRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM stamp_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete stamp: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("stamp %s not found", id)
	}

	return nil
}

// DeleteAll removes every stamp record.
func (r *StampRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM stamp_records"); err != nil {
		return fmt.Errorf("failed to delete stamps: %w", err)
	}
	return nil
}

// GetNextID returns the next available stamp ID.
func (r *StampRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 7) AS INTEGER)), 0) FROM stamp_records",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next stamp ID: %w", err)
	}

	return fmt.Sprintf("STAMP-%03d", maxID+1), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStamp(row rowScanner) (*secondary.StampRecord, error) {
	var (
		reason    sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.StampRecord{}
	err := row.Scan(&record.ID, &record.CardIndex, &record.StampPosition, &record.CardCapacity,
		&record.StampedAt, &reason, &record.Special, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Reason = reason.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

func collectStamps(rows *sql.Rows) ([]*secondary.StampRecord, error) {
	var stamps []*secondary.StampRecord
	for rows.Next() {
		record, err := scanStamp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stamp: %w", err)
		}
		stamps = append(stamps, record)
	}
	return stamps, rows.Err()
}

// Ensure StampRepository implements the interface
var _ secondary.StampRepository = (*StampRepository)(nil)
