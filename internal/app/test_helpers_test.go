package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/quitcard/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockStampRepository implements secondary.StampRepository for testing.
type mockStampRepository struct {
	stamps    map[string]*secondary.StampRecord
	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newMockStampRepository() *mockStampRepository {
	return &mockStampRepository{stamps: make(map[string]*secondary.StampRecord)}
}

func (m *mockStampRepository) Create(ctx context.Context, stamp *secondary.StampRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *stamp
	m.stamps[stamp.ID] = &cp
	return nil
}

func (m *mockStampRepository) GetByID(ctx context.Context, id string) (*secondary.StampRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if s, ok := m.stamps[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, fmt.Errorf("stamp %s not found", id)
}

func (m *mockStampRepository) List(ctx context.Context) ([]*secondary.StampRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.StampRecord
	for _, s := range m.stamps {
		cp := *s
		out = append(out, &cp)
	}
	// Newest first, matching the sqlite adapter's ordering.
	sort.Slice(out, func(i, j int) bool {
		if out[i].StampedAt != out[j].StampedAt {
			return out[i].StampedAt > out[j].StampedAt
		}
		return naturalIDLess(out[j].ID, out[i].ID)
	})
	return out, nil
}

func (m *mockStampRepository) ListByCard(ctx context.Context, cardIndex int) ([]*secondary.StampRecord, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*secondary.StampRecord
	for _, s := range all {
		if s.CardIndex == cardIndex {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStampRepository) UpdateReason(ctx context.Context, id, reason string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	s, ok := m.stamps[id]
	if !ok {
		return fmt.Errorf("stamp %s not found", id)
	}
	s.Reason = reason
	return nil
}

func (m *mockStampRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.stamps[id]; !ok {
		return fmt.Errorf("stamp %s not found", id)
	}
	delete(m.stamps, id)
	return nil
}

func (m *mockStampRepository) DeleteAll(ctx context.Context) error {
	m.stamps = make(map[string]*secondary.StampRecord)
	return nil
}

func (m *mockStampRepository) GetNextID(ctx context.Context) (string, error) {
	max := 0
	for id := range m.stamps {
		var n int
		if _, err := fmt.Sscanf(id, "STAMP-%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("STAMP-%03d", max+1), nil
}

func naturalIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// Ensure mockStampRepository implements the interface
var _ secondary.StampRepository = (*mockStampRepository)(nil)

// mockSettingsRepository implements secondary.SettingsRepository for testing.
type mockSettingsRepository struct {
	record secondary.SettingsRecord
	getErr error
	setErr error
}

func newMockSettingsRepository() *mockSettingsRepository {
	return &mockSettingsRepository{record: defaultSettingsRecord()}
}

func defaultSettingsRecord() secondary.SettingsRecord {
	return secondary.SettingsRecord{QuoteRefreshHours: 24}
}

func (m *mockSettingsRepository) Get(ctx context.Context) (*secondary.SettingsRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	cp := m.record
	return &cp, nil
}

func (m *mockSettingsRepository) SetCompanyName(ctx context.Context, name string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.CompanyName = name
	return nil
}

func (m *mockSettingsRepository) SetTheme(ctx context.Context, theme string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.Theme = theme
	return nil
}

func (m *mockSettingsRepository) SetTargetStamps(ctx context.Context, target int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.TargetStamps = target
	return nil
}

func (m *mockSettingsRepository) SetLastAcknowledgedCard(ctx context.Context, index int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.LastAcknowledgedCard = index
	return nil
}

func (m *mockSettingsRepository) SetEscalationCount(ctx context.Context, count int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.EscalationCount = count
	return nil
}

func (m *mockSettingsRepository) SetOnboardingDone(ctx context.Context, done bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.OnboardingDone = done
	return nil
}

func (m *mockSettingsRepository) SetTargetFund(ctx context.Context, amount int64) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.TargetFund = amount
	return nil
}

func (m *mockSettingsRepository) SetCurrentFund(ctx context.Context, amount int64) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.CurrentFund = amount
	return nil
}

func (m *mockSettingsRepository) SetResumeReady(ctx context.Context, ready bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.ResumeReady = ready
	return nil
}

func (m *mockSettingsRepository) SetQuoteRefreshHours(ctx context.Context, hours int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.record.QuoteRefreshHours = hours
	return nil
}

func (m *mockSettingsRepository) Reset(ctx context.Context) error {
	m.record = defaultSettingsRecord()
	return nil
}

// Ensure mockSettingsRepository implements the interface
var _ secondary.SettingsRepository = (*mockSettingsRepository)(nil)

// mockTodoRepository implements secondary.TodoRepository for testing.
type mockTodoRepository struct {
	todos     []*secondary.TodoRecord
	createErr error
}

func newMockTodoRepository() *mockTodoRepository {
	return &mockTodoRepository{}
}

func (m *mockTodoRepository) Create(ctx context.Context, item *secondary.TodoRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *item
	m.todos = append(m.todos, &cp)
	return nil
}

func (m *mockTodoRepository) List(ctx context.Context) ([]*secondary.TodoRecord, error) {
	out := make([]*secondary.TodoRecord, len(m.todos))
	for i, t := range m.todos {
		cp := *t
		out[i] = &cp
	}
	return out, nil
}

func (m *mockTodoRepository) SetDone(ctx context.Context, id string, done bool) error {
	for _, t := range m.todos {
		if t.ID == id {
			t.Done = done
			return nil
		}
	}
	return fmt.Errorf("todo %s not found", id)
}

func (m *mockTodoRepository) Delete(ctx context.Context, id string) error {
	for i, t := range m.todos {
		if t.ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("todo %s not found", id)
}

func (m *mockTodoRepository) DeleteAll(ctx context.Context) error {
	m.todos = nil
	return nil
}

func (m *mockTodoRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("TODO-%03d", len(m.todos)+1), nil
}

// Ensure mockTodoRepository implements the interface
var _ secondary.TodoRepository = (*mockTodoRepository)(nil)

// mockReasonRepository implements secondary.ReasonRepository for testing.
type mockReasonRepository struct {
	reasons []*secondary.ReasonRecord
}

func newMockReasonRepository() *mockReasonRepository {
	return &mockReasonRepository{}
}

func (m *mockReasonRepository) Create(ctx context.Context, reason *secondary.ReasonRecord) error {
	cp := *reason
	m.reasons = append(m.reasons, &cp)
	return nil
}

func (m *mockReasonRepository) List(ctx context.Context) ([]*secondary.ReasonRecord, error) {
	out := make([]*secondary.ReasonRecord, len(m.reasons))
	for i, r := range m.reasons {
		cp := *r
		out[i] = &cp
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UsageCount > out[j].UsageCount })
	return out, nil
}

func (m *mockReasonRepository) GetByText(ctx context.Context, text string) (*secondary.ReasonRecord, error) {
	for _, r := range m.reasons {
		if r.Text == text {
			cp := *r
			return &cp, nil
		}
	}
	return nil, errors.New("reason not found")
}

func (m *mockReasonRepository) IncrementUsage(ctx context.Context, id string) error {
	for _, r := range m.reasons {
		if r.ID == id {
			r.UsageCount++
			return nil
		}
	}
	return fmt.Errorf("reason %s not found", id)
}

func (m *mockReasonRepository) Delete(ctx context.Context, id string) error {
	for i, r := range m.reasons {
		if r.ID == id {
			m.reasons = append(m.reasons[:i], m.reasons[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("reason %s not found", id)
}

func (m *mockReasonRepository) DeleteAll(ctx context.Context) error {
	m.reasons = nil
	return nil
}

func (m *mockReasonRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("RSN-%03d", len(m.reasons)+1), nil
}

// Ensure mockReasonRepository implements the interface
var _ secondary.ReasonRepository = (*mockReasonRepository)(nil)
