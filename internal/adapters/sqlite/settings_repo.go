package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/quitcard/internal/ports/secondary"
)

// SettingsRepository implements secondary.SettingsRepository with SQLite.
// Settings live in a single row with id fixed at 1; Get creates it with
// defaults on first access.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the settings row, inserting defaults if it does not exist.
func (r *SettingsRepository) Get(ctx context.Context) (*secondary.SettingsRecord, error) {
	if err := r.ensureRow(ctx); err != nil {
		return nil, err
	}

	var (
		onboardingDone bool
		resumeReady    bool
		updatedAt      time.Time
	)

	record := &secondary.SettingsRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT company_name, theme, target_stamps, last_acknowledged_card, escalation_count, onboarding_done, target_fund, current_fund, resume_ready, quote_refresh_hours, updated_at FROM app_settings WHERE id = 1",
	).Scan(&record.CompanyName, &record.Theme, &record.TargetStamps, &record.LastAcknowledgedCard,
		&record.EscalationCount, &onboardingDone, &record.TargetFund, &record.CurrentFund,
		&resumeReady, &record.QuoteRefreshHours, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	record.OnboardingDone = onboardingDone
	record.ResumeReady = resumeReady
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// SetCompanyName updates the tracked company name.
func (r *SettingsRepository) SetCompanyName(ctx context.Context, name string) error {
	return r.setColumn(ctx, "company_name", name)
}

// SetTheme updates the card theme.
func (r *SettingsRepository) SetTheme(ctx context.Context, theme string) error {
	return r.setColumn(ctx, "theme", theme)
}

// SetTargetStamps updates the capacity applied to new stamps.
func (r *SettingsRepository) SetTargetStamps(ctx context.Context, target int) error {
	return r.setColumn(ctx, "target_stamps", target)
}

// SetLastAcknowledgedCard moves the acknowledgment cursor.
func (r *SettingsRepository) SetLastAcknowledgedCard(ctx context.Context, index int) error {
	return r.setColumn(ctx, "last_acknowledged_card", index)
}

// SetEscalationCount updates the escalation counter.
func (r *SettingsRepository) SetEscalationCount(ctx context.Context, count int) error {
	return r.setColumn(ctx, "escalation_count", count)
}

// SetOnboardingDone marks first-run setup as finished.
func (r *SettingsRepository) SetOnboardingDone(ctx context.Context, done bool) error {
	return r.setColumn(ctx, "onboarding_done", done)
}

// SetTargetFund updates the savings goal.
func (r *SettingsRepository) SetTargetFund(ctx context.Context, amount int64) error {
	return r.setColumn(ctx, "target_fund", amount)
}

// SetCurrentFund updates the saved amount.
func (r *SettingsRepository) SetCurrentFund(ctx context.Context, amount int64) error {
	return r.setColumn(ctx, "current_fund", amount)
}

// SetResumeReady toggles the resume-ready flag.
func (r *SettingsRepository) SetResumeReady(ctx context.Context, ready bool) error {
	return r.setColumn(ctx, "resume_ready", ready)
}

// SetQuoteRefreshHours updates the quote rotation interval.
func (r *SettingsRepository) SetQuoteRefreshHours(ctx context.Context, hours int) error {
	return r.setColumn(ctx, "quote_refresh_hours", hours)
}

// Reset restores the settings row to its defaults.
func (r *SettingsRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM app_settings WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	return r.ensureRow(ctx)
}

func (r *SettingsRepository) ensureRow(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "INSERT OR IGNORE INTO app_settings (id) VALUES (1)")
	if err != nil {
		return fmt.Errorf("failed to initialize settings: %w", err)
	}
	return nil
}

// setColumn updates a single settings column. The column name is always one
// of the fixed strings above, never user input.
func (r *SettingsRepository) setColumn(ctx context.Context, column string, value any) error {
	if err := r.ensureRow(ctx); err != nil {
		return err
	}
	query := fmt.Sprintf("UPDATE app_settings SET %s = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1", column)
	if _, err := r.db.ExecContext(ctx, query, value); err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}
	return nil
}

// Ensure SettingsRepository implements the interface
var _ secondary.SettingsRepository = (*SettingsRepository)(nil)
