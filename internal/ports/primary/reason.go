package primary

import "context"

// Reason is a reusable stamp reason with a usage counter.
type Reason struct {
	ID         string
	Text       string
	UsageCount int
}

// ReasonService manages reusable stamp reasons. Texts are unique; adding a
// duplicate returns the existing entry.
type ReasonService interface {
	AddReason(ctx context.Context, text string) (*Reason, error)
	ListReasons(ctx context.Context) ([]*Reason, error)
	UseReason(ctx context.Context, reasonID string) (*Reason, error)
	DeleteReason(ctx context.Context, reasonID string) error
}
