// Package secondary defines the driven ports: repository interfaces the
// application core depends on, implemented by the sqlite adapters.
package secondary

import "context"

// StampRecord is the persistence representation of one daily stamp.
// CardIndex, StampPosition and CardCapacity are captured at creation time
// and never recalculated when settings change.
type StampRecord struct {
	ID            string
	CardIndex     int
	StampPosition int
	CardCapacity  int
	StampedAt     int64 // unix milliseconds
	Reason        string
	Special       bool
	CreatedAt     string
	UpdatedAt     string
}

// SettingsRecord is the persistence representation of the singleton
// settings row.
type SettingsRecord struct {
	CompanyName          string
	Theme                string
	TargetStamps         int
	LastAcknowledgedCard int
	EscalationCount      int
	OnboardingDone       bool
	TargetFund           int64
	CurrentFund          int64
	ResumeReady          bool
	QuoteRefreshHours    int
	UpdatedAt            string
}

// TodoRecord is one resignation-plan checklist item.
type TodoRecord struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt string
}

// ReasonRecord is one reusable stamp reason.
type ReasonRecord struct {
	ID         string
	Text       string
	UsageCount int
	CreatedAt  string
}

// StampRepository persists stamp records. List returns records ordered by
// stamped_at descending (newest first), ties broken by id.
type StampRepository interface {
	Create(ctx context.Context, stamp *StampRecord) error
	GetByID(ctx context.Context, id string) (*StampRecord, error)
	List(ctx context.Context) ([]*StampRecord, error)
	ListByCard(ctx context.Context, cardIndex int) ([]*StampRecord, error)
	UpdateReason(ctx context.Context, id, reason string) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	GetNextID(ctx context.Context) (string, error)
}

// SettingsRepository persists the singleton settings row. Get creates the
// row with defaults when it does not exist yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*SettingsRecord, error)
	SetCompanyName(ctx context.Context, name string) error
	SetTheme(ctx context.Context, theme string) error
	SetTargetStamps(ctx context.Context, target int) error
	SetLastAcknowledgedCard(ctx context.Context, index int) error
	SetEscalationCount(ctx context.Context, count int) error
	SetOnboardingDone(ctx context.Context, done bool) error
	SetTargetFund(ctx context.Context, amount int64) error
	SetCurrentFund(ctx context.Context, amount int64) error
	SetResumeReady(ctx context.Context, ready bool) error
	SetQuoteRefreshHours(ctx context.Context, hours int) error
	Reset(ctx context.Context) error
}

// TodoRepository persists checklist items, ordered by creation time.
type TodoRepository interface {
	Create(ctx context.Context, item *TodoRecord) error
	List(ctx context.Context) ([]*TodoRecord, error)
	SetDone(ctx context.Context, id string, done bool) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	GetNextID(ctx context.Context) (string, error)
}

// ReasonRepository persists reusable stamp reasons.
type ReasonRepository interface {
	Create(ctx context.Context, reason *ReasonRecord) error
	List(ctx context.Context) ([]*ReasonRecord, error)
	GetByText(ctx context.Context, text string) (*ReasonRecord, error)
	IncrementUsage(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	GetNextID(ctx context.Context) (string, error)
}
