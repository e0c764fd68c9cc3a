package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/quitcard/internal/core/card"
	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/ports/secondary"
)

// EscalationThreshold is the number of consecutive grumbles on an
// already-stamped day that unlocks the special stamp path.
const EscalationThreshold = 5

// StampServiceImpl implements the StampService interface: the stamp ledger.
// It is the sole writer to the stamp collection and the acknowledgment
// cursor; every mutation runs through a core guard first, and each ledger
// operation is a single insert, update or delete against the store.
type StampServiceImpl struct {
	stampRepo    secondary.StampRepository
	settingsRepo secondary.SettingsRepository
	now          func() time.Time
}

// NewStampService creates a new StampService with injected dependencies.
func NewStampService(stampRepo secondary.StampRepository, settingsRepo secondary.SettingsRepository) *StampServiceImpl {
	return &StampServiceImpl{
		stampRepo:    stampRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// AddStamp creates a stamp on the current display card.
func (s *StampServiceImpl) AddStamp(ctx context.Context, req primary.AddStampRequest) (*primary.Stamp, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	records, err := s.stampRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stamps: %w", err)
	}

	capacity := effectiveCapacity(settings)
	stamps := toCoreStamps(records)

	if err := card.CanAddStamp(card.AddStampContext{
		TotalStamps:      len(stamps),
		Capacity:         capacity,
		LastAcknowledged: settings.LastAcknowledgedCard,
	}).Error(); err != nil {
		return nil, err
	}

	cardIndex, err := card.CurrentDisplayCardIndex(len(stamps), capacity, settings.LastAcknowledgedCard)
	if err != nil {
		return nil, err
	}
	position := card.NextPosition(stamps, cardIndex)

	nextID, err := s.stampRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate stamp ID: %w", err)
	}

	record := &secondary.StampRecord{
		ID:            nextID,
		CardIndex:     cardIndex,
		StampPosition: position,
		CardCapacity:  capacity,
		StampedAt:     s.now().UnixMilli(),
		Reason:        req.Reason,
		Special:       req.Special,
	}
	if err := s.stampRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create stamp: %w", err)
	}

	// A successful stamp always clears the escalation counter.
	if settings.EscalationCount != 0 {
		if err := s.settingsRepo.SetEscalationCount(ctx, 0); err != nil {
			return nil, fmt.Errorf("failed to reset escalation counter: %w", err)
		}
	}

	created, err := s.stampRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created stamp: %w", err)
	}
	return recordToStamp(created, settings.LastAcknowledgedCard), nil
}

// EditReason replaces a stamp's reason; all other fields are immutable.
func (s *StampServiceImpl) EditReason(ctx context.Context, stampID, reason string) (*primary.Stamp, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	record, err := s.stampRepo.GetByID(ctx, stampID)
	if err != nil {
		return nil, err
	}

	if err := card.CanEditStamp(card.MutationContext{
		StampID:          record.ID,
		CardIndex:        record.CardIndex,
		LastAcknowledged: settings.LastAcknowledgedCard,
	}).Error(); err != nil {
		return nil, err
	}

	if err := s.stampRepo.UpdateReason(ctx, stampID, reason); err != nil {
		return nil, fmt.Errorf("failed to update stamp: %w", err)
	}

	updated, err := s.stampRepo.GetByID(ctx, stampID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated stamp: %w", err)
	}
	return recordToStamp(updated, settings.LastAcknowledgedCard), nil
}

// DeleteStamp removes a stamp. Surviving positions keep their numbers; the
// next stamp on the card fills the lowest free position.
func (s *StampServiceImpl) DeleteStamp(ctx context.Context, stampID string) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	record, err := s.stampRepo.GetByID(ctx, stampID)
	if err != nil {
		return err
	}

	if err := card.CanDeleteStamp(card.MutationContext{
		StampID:          record.ID,
		CardIndex:        record.CardIndex,
		LastAcknowledged: settings.LastAcknowledgedCard,
	}).Error(); err != nil {
		return err
	}

	return s.stampRepo.Delete(ctx, stampID)
}

// AdvanceCard acknowledges the filled card. This is the only operation
// that unlocks the next card's accumulation; the acknowledged card and its
// stamps become permanently read-only.
func (s *StampServiceImpl) AdvanceCard(ctx context.Context) (int, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	records, err := s.stampRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load stamps: %w", err)
	}

	capacity := effectiveCapacity(settings)
	total := len(records)

	awaiting, err := card.IsAwaitingReview(total, capacity, settings.LastAcknowledgedCard)
	if err != nil {
		return 0, err
	}
	if !awaiting {
		return 0, fmt.Errorf("%w: no filled card is awaiting review", card.ErrInvalidTransition)
	}

	completed, err := card.CompletedCardCount(total, capacity)
	if err != nil {
		return 0, err
	}
	if err := card.CanAdvanceCard(card.AdvanceContext{
		CompletedCards:   completed,
		LastAcknowledged: settings.LastAcknowledgedCard,
	}).Error(); err != nil {
		return 0, err
	}

	if err := s.settingsRepo.SetLastAcknowledgedCard(ctx, completed); err != nil {
		return 0, fmt.Errorf("failed to advance card: %w", err)
	}
	return completed, nil
}

// ResetAll deletes every stamp and restores default settings.
func (s *StampServiceImpl) ResetAll(ctx context.Context) error {
	if err := s.stampRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete stamps: %w", err)
	}
	if err := s.settingsRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	return nil
}

// Progress returns the derived progression snapshot for the UI.
func (s *StampServiceImpl) Progress(ctx context.Context) (*primary.Progress, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	records, err := s.stampRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stamps: %w", err)
	}

	capacity := effectiveCapacity(settings)
	p, err := card.ComputeProgress(toCoreStamps(records), capacity, settings.LastAcknowledgedCard, s.now())
	if err != nil {
		return nil, err
	}

	return &primary.Progress{
		TotalStamps:          p.TotalStamps,
		CompletedCards:       p.CompletedCards,
		JustFilled:           p.JustFilled,
		AwaitingReview:       p.AwaitingReview,
		CurrentCardIndex:     p.CurrentCardIndex,
		StampsOnCurrent:      p.StampsOnCurrent,
		StampedToday:         p.StampedToday,
		Capacity:             capacity,
		LastAcknowledgedCard: settings.LastAcknowledgedCard,
		EscalationCount:      settings.EscalationCount,
	}, nil
}

// ListStamps returns all stamps, newest first.
func (s *StampServiceImpl) ListStamps(ctx context.Context) ([]*primary.Stamp, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	records, err := s.stampRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stamps: %w", err)
	}

	stamps := make([]*primary.Stamp, len(records))
	for i, r := range records {
		stamps[i] = recordToStamp(r, settings.LastAcknowledgedCard)
	}
	return stamps, nil
}

// StampsForCard returns the stamps captured on one card, newest first.
func (s *StampServiceImpl) StampsForCard(ctx context.Context, cardIndex int) ([]*primary.Stamp, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	records, err := s.stampRepo.ListByCard(ctx, cardIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list stamps for card %d: %w", cardIndex, err)
	}

	stamps := make([]*primary.Stamp, len(records))
	for i, r := range records {
		stamps[i] = recordToStamp(r, settings.LastAcknowledgedCard)
	}
	return stamps, nil
}

// Grumble increments the escalation counter and returns the new value.
func (s *StampServiceImpl) Grumble(ctx context.Context) (int, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	count := settings.EscalationCount + 1
	if err := s.settingsRepo.SetEscalationCount(ctx, count); err != nil {
		return 0, fmt.Errorf("failed to update escalation counter: %w", err)
	}
	return count, nil
}

// Helper methods

// effectiveCapacity returns the configured target, or the default when the
// user has not completed setup yet.
func effectiveCapacity(settings *secondary.SettingsRecord) int {
	if settings.TargetStamps > 0 {
		return settings.TargetStamps
	}
	return card.DefaultCapacity
}

func toCoreStamps(records []*secondary.StampRecord) []card.Stamp {
	stamps := make([]card.Stamp, len(records))
	for i, r := range records {
		stamps[i] = card.Stamp{
			ID:        r.ID,
			CardIndex: r.CardIndex,
			Position:  r.StampPosition,
			Capacity:  r.CardCapacity,
			StampedAt: time.UnixMilli(r.StampedAt),
		}
	}
	return stamps
}

func recordToStamp(r *secondary.StampRecord, lastAcknowledged int) *primary.Stamp {
	return &primary.Stamp{
		ID:        r.ID,
		CardIndex: r.CardIndex,
		Position:  r.StampPosition,
		Capacity:  r.CardCapacity,
		StampedAt: time.UnixMilli(r.StampedAt),
		Reason:    r.Reason,
		Special:   r.Special,
		Locked:    card.IsLocked(r.CardIndex, lastAcknowledged),
	}
}

// Ensure StampServiceImpl implements the interface
var _ primary.StampService = (*StampServiceImpl)(nil)
