// Package primary defines the driving ports: the service interfaces the
// presentation layer calls, implemented in internal/app.
package primary

import (
	"context"
	"time"
)

// Stamp is one daily stamp as exposed to the presentation layer.
type Stamp struct {
	ID        string
	CardIndex int
	Position  int
	Capacity  int
	StampedAt time.Time
	Reason    string
	Special   bool
	Locked    bool
}

// Progress is the derived card state the UI renders from. Recomputed from
// the full history on every read; nothing here is stored.
type Progress struct {
	TotalStamps          int
	CompletedCards       int
	JustFilled           bool
	AwaitingReview       bool
	CurrentCardIndex     int
	StampsOnCurrent      int
	StampedToday         bool
	Capacity             int
	LastAcknowledgedCard int
	EscalationCount      int
}

// AddStampRequest carries the input for a new stamp.
type AddStampRequest struct {
	Reason  string
	Special bool // set via the escalation path; cosmetic only
}

// StampService is the stamp ledger: the sole mediator of mutations to the
// stamp collection and the acknowledgment cursor.
type StampService interface {
	// AddStamp creates a stamp on the current display card. Fails with
	// card.ErrAwaitingReview while a filled card waits for its advance
	// decision. Resets the escalation counter on success.
	AddStamp(ctx context.Context, req AddStampRequest) (*Stamp, error)

	// EditReason replaces a stamp's reason. Fails with card.ErrRecordLocked
	// on acknowledged cards. All other fields are immutable.
	EditReason(ctx context.Context, stampID, reason string) (*Stamp, error)

	// DeleteStamp removes a stamp. Fails with card.ErrRecordLocked on
	// acknowledged cards. Surviving positions are not renumbered.
	DeleteStamp(ctx context.Context, stampID string) error

	// AdvanceCard acknowledges the filled card and opens the next one.
	// Returns the new acknowledgment cursor. Fails with
	// card.ErrInvalidTransition unless a filled card is awaiting review.
	AdvanceCard(ctx context.Context) (int, error)

	// ResetAll deletes every stamp, todo and reason and restores default
	// settings. Irreversible; callers must confirm first.
	ResetAll(ctx context.Context) error

	// Progress returns the derived progression snapshot.
	Progress(ctx context.Context) (*Progress, error)

	// ListStamps returns all stamps, newest first.
	ListStamps(ctx context.Context) ([]*Stamp, error)

	// StampsForCard returns the stamps captured on one card, newest first.
	StampsForCard(ctx context.Context, cardIndex int) ([]*Stamp, error)

	// Grumble increments the escalation counter and returns its new value.
	Grumble(ctx context.Context) (int, error)
}
