package app

import (
	"context"
	"fmt"

	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/ports/secondary"
)

// SettingsServiceImpl implements the SettingsService interface.
type SettingsServiceImpl struct {
	settingsRepo secondary.SettingsRepository
}

// NewSettingsService creates a new SettingsService with injected dependencies.
func NewSettingsService(settingsRepo secondary.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get returns the singleton settings, creating defaults on first access.
func (s *SettingsServiceImpl) Get(ctx context.Context) (*primary.Settings, error) {
	record, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &primary.Settings{
		CompanyName:          record.CompanyName,
		Theme:                record.Theme,
		TargetStamps:         record.TargetStamps,
		LastAcknowledgedCard: record.LastAcknowledgedCard,
		EscalationCount:      record.EscalationCount,
		OnboardingDone:       record.OnboardingDone,
		TargetFund:           record.TargetFund,
		CurrentFund:          record.CurrentFund,
		ResumeReady:          record.ResumeReady,
		QuoteRefreshHours:    record.QuoteRefreshHours,
	}, nil
}

// SetCompanyName updates the tracked company name.
func (s *SettingsServiceImpl) SetCompanyName(ctx context.Context, name string) error {
	return s.settingsRepo.SetCompanyName(ctx, name)
}

// SetTheme updates the card theme.
func (s *SettingsServiceImpl) SetTheme(ctx context.Context, theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("unknown theme %q (valid: %s, %s, %s)", theme,
			primary.ThemeClassicRPG, primary.ThemeSystemError, primary.ThemeVacationMode)
	}
	return s.settingsRepo.SetTheme(ctx, theme)
}

// SetTargetStamps updates the capacity applied to newly created stamps.
// Existing stamps keep the capacity captured at their creation.
func (s *SettingsServiceImpl) SetTargetStamps(ctx context.Context, target int) error {
	if target <= 0 {
		return fmt.Errorf("target stamps must be positive (got %d)", target)
	}
	return s.settingsRepo.SetTargetStamps(ctx, target)
}

// CompleteOnboarding marks first-run setup as finished.
func (s *SettingsServiceImpl) CompleteOnboarding(ctx context.Context) error {
	return s.settingsRepo.SetOnboardingDone(ctx, true)
}

// SetTargetFund updates the savings goal.
func (s *SettingsServiceImpl) SetTargetFund(ctx context.Context, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("target fund cannot be negative (got %d)", amount)
	}
	return s.settingsRepo.SetTargetFund(ctx, amount)
}

// SetCurrentFund updates the saved amount.
func (s *SettingsServiceImpl) SetCurrentFund(ctx context.Context, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("current fund cannot be negative (got %d)", amount)
	}
	return s.settingsRepo.SetCurrentFund(ctx, amount)
}

// AddToFund adds to the saved amount and returns the new total.
func (s *SettingsServiceImpl) AddToFund(ctx context.Context, amount int64) (int64, error) {
	record, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	total := record.CurrentFund + amount
	if total < 0 {
		return 0, fmt.Errorf("fund cannot go below zero (current %d, delta %d)", record.CurrentFund, amount)
	}
	if err := s.settingsRepo.SetCurrentFund(ctx, total); err != nil {
		return 0, fmt.Errorf("failed to update fund: %w", err)
	}
	return total, nil
}

// SetResumeReady toggles the resume-ready flag of the resignation plan.
func (s *SettingsServiceImpl) SetResumeReady(ctx context.Context, ready bool) error {
	return s.settingsRepo.SetResumeReady(ctx, ready)
}

// SetQuoteRefreshHours updates the quote rotation interval.
func (s *SettingsServiceImpl) SetQuoteRefreshHours(ctx context.Context, hours int) error {
	if hours <= 0 {
		return fmt.Errorf("refresh interval must be positive (got %d)", hours)
	}
	return s.settingsRepo.SetQuoteRefreshHours(ctx, hours)
}

func validTheme(theme string) bool {
	for _, t := range primary.ValidThemes {
		if t == theme {
			return true
		}
	}
	return false
}

// Ensure SettingsServiceImpl implements the interface
var _ primary.SettingsService = (*SettingsServiceImpl)(nil)
