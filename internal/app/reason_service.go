package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/ports/secondary"
)

// ReasonServiceImpl implements the ReasonService interface.
type ReasonServiceImpl struct {
	reasonRepo secondary.ReasonRepository
}

// NewReasonService creates a new ReasonService with injected dependencies.
func NewReasonService(reasonRepo secondary.ReasonRepository) *ReasonServiceImpl {
	return &ReasonServiceImpl{reasonRepo: reasonRepo}
}

// AddReason stores a reusable reason. Texts are unique: adding an existing
// text returns the stored entry instead of creating a duplicate.
func (s *ReasonServiceImpl) AddReason(ctx context.Context, text string) (*primary.Reason, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("reason text cannot be empty")
	}

	if existing, err := s.reasonRepo.GetByText(ctx, text); err == nil && existing != nil {
		return recordToReason(existing), nil
	}

	nextID, err := s.reasonRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reason ID: %w", err)
	}

	record := &secondary.ReasonRecord{ID: nextID, Text: text}
	if err := s.reasonRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create reason: %w", err)
	}
	return recordToReason(record), nil
}

// ListReasons returns all reasons, most used first.
func (s *ReasonServiceImpl) ListReasons(ctx context.Context) ([]*primary.Reason, error) {
	records, err := s.reasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reasons: %w", err)
	}

	reasons := make([]*primary.Reason, len(records))
	for i, r := range records {
		reasons[i] = recordToReason(r)
	}
	return reasons, nil
}

// UseReason bumps a reason's usage counter and returns the updated entry.
func (s *ReasonServiceImpl) UseReason(ctx context.Context, reasonID string) (*primary.Reason, error) {
	if err := s.reasonRepo.IncrementUsage(ctx, reasonID); err != nil {
		return nil, err
	}
	records, err := s.reasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reason: %w", err)
	}
	for _, r := range records {
		if r.ID == reasonID {
			return recordToReason(r), nil
		}
	}
	return nil, fmt.Errorf("reason %s not found", reasonID)
}

// DeleteReason removes a stored reason.
func (s *ReasonServiceImpl) DeleteReason(ctx context.Context, reasonID string) error {
	return s.reasonRepo.Delete(ctx, reasonID)
}

func recordToReason(r *secondary.ReasonRecord) *primary.Reason {
	return &primary.Reason{ID: r.ID, Text: r.Text, UsageCount: r.UsageCount}
}

// Ensure ReasonServiceImpl implements the interface
var _ primary.ReasonService = (*ReasonServiceImpl)(nil)
