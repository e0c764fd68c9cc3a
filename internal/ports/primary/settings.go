package primary

import "context"

// Card themes, mirrored in the status rendering.
const (
	ThemeClassicRPG   = "classic-rpg"
	ThemeSystemError  = "system-error"
	ThemeVacationMode = "vacation-mode"
)

// ValidThemes lists the selectable card themes.
var ValidThemes = []string{ThemeClassicRPG, ThemeSystemError, ThemeVacationMode}

// Settings is the singleton configuration exposed to the presentation
// layer. Fund amounts are plain integers.
type Settings struct {
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
}

// SettingsService reads and updates the singleton settings row. Target
// changes apply to newly created stamps only; captured per-stamp capacity
// is never rewritten.
type SettingsService interface {
	Get(ctx context.Context) (*Settings, error)
	SetCompanyName(ctx context.Context, name string) error
	SetTheme(ctx context.Context, theme string) error
	SetTargetStamps(ctx context.Context, target int) error
	CompleteOnboarding(ctx context.Context) error
	SetTargetFund(ctx context.Context, amount int64) error
	SetCurrentFund(ctx context.Context, amount int64) error
	AddToFund(ctx context.Context, amount int64) (int64, error)
	SetResumeReady(ctx context.Context, ready bool) error
	SetQuoteRefreshHours(ctx context.Context, hours int) error
}
