package card

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
	Kind    error  // Sentinel error kind for errors.Is matching
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Kind != nil {
		return fmt.Errorf("%w: %s", r.Kind, r.Reason)
	}
	return fmt.Errorf("%s", r.Reason)
}

// AddStampContext provides context for stamp creation guards.
type AddStampContext struct {
	TotalStamps      int
	Capacity         int
	LastAcknowledged int
}

// MutationContext provides context for edit/delete guards on one stamp.
type MutationContext struct {
	StampID          string
	CardIndex        int
	LastAcknowledged int
}

// AdvanceContext provides context for card advance guards.
type AdvanceContext struct {
	CompletedCards   int
	LastAcknowledged int
}

// CanAddStamp evaluates whether a new stamp may be created.
// Rule: no stamps while the filled card awaits the user's advance decision.
// The next card only opens through the explicit advance action.
func CanAddStamp(ctx AddStampContext) GuardResult {
	if ctx.Capacity <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("card capacity must be positive (got %d)", ctx.Capacity),
			Kind:    ErrInvalidConfiguration,
		}
	}
	awaiting, _ := IsAwaitingReview(ctx.TotalStamps, ctx.Capacity, ctx.LastAcknowledged)
	if awaiting {
		completed := ctx.TotalStamps / ctx.Capacity
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("card %d is full and waiting for review. Advance it first with: quitcard card advance", completed),
			Kind:    ErrAwaitingReview,
		}
	}
	return GuardResult{Allowed: true}
}

// CanEditStamp evaluates whether a stamp's reason may be edited.
// Rule: stamps on acknowledged cards are permanently read-only.
func CanEditStamp(ctx MutationContext) GuardResult {
	if ctx.CardIndex <= ctx.LastAcknowledged {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("stamp %s belongs to card %d which has been acknowledged and is locked", ctx.StampID, ctx.CardIndex),
			Kind:    ErrRecordLocked,
		}
	}
	return GuardResult{Allowed: true}
}

// CanDeleteStamp evaluates whether a stamp may be deleted.
// Same locking rule as edit.
func CanDeleteStamp(ctx MutationContext) GuardResult {
	if ctx.CardIndex <= ctx.LastAcknowledged {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("stamp %s belongs to card %d which has been acknowledged and is locked", ctx.StampID, ctx.CardIndex),
			Kind:    ErrRecordLocked,
		}
	}
	return GuardResult{Allowed: true}
}

// CanAdvanceCard evaluates whether the acknowledgment cursor may advance.
// Rules: strictly monotonic, and only meaningful from the just-filled
// state. Advancing twice for the same card is an explicit rejection, never
// a silent double-advance.
func CanAdvanceCard(ctx AdvanceContext) GuardResult {
	if ctx.CompletedCards <= ctx.LastAcknowledged {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot advance to card %d: already acknowledged through card %d", ctx.CompletedCards, ctx.LastAcknowledged),
			Kind:    ErrInvalidTransition,
		}
	}
	return GuardResult{Allowed: true}
}

// IsLocked reports whether a stamp on cardIndex is immutable given the
// acknowledgment cursor. Convenience for display layers; the guards above
// are the authoritative checks.
func IsLocked(cardIndex, lastAcknowledged int) bool {
	return cardIndex <= lastAcknowledged
}
