package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/quitcard/internal/core/card"
	"github.com/example/quitcard/internal/ports/primary"
)

func newTestStampService(stamps *mockStampRepository, settings *mockSettingsRepository) *StampServiceImpl {
	svc := NewStampService(stamps, settings)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	// Each stamp lands one minute after the previous one so ordering
	// and same-day checks are deterministic.
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return svc
}

func addStamps(t *testing.T, svc *StampServiceImpl, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.AddStamp(context.Background(), primary.AddStampRequest{
			Reason: fmt.Sprintf("reason %d", i+1),
		})
		require.NoError(t, err)
	}
}

func TestAddStamp(t *testing.T) {
	ctx := context.Background()

	t.Run("first stamp lands on card 1 position 1", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		stamp, err := svc.AddStamp(ctx, primary.AddStampRequest{Reason: "pointless meeting"})
		require.NoError(t, err)
		assert.Equal(t, "STAMP-001", stamp.ID)
		assert.Equal(t, 1, stamp.CardIndex)
		assert.Equal(t, 1, stamp.Position)
		assert.Equal(t, 10, stamp.Capacity)
		assert.Equal(t, "pointless meeting", stamp.Reason)
		assert.False(t, stamp.Locked)
	})

	t.Run("filling the card enters review and blocks further stamps", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 10)

		p, err := svc.Progress(ctx)
		require.NoError(t, err)
		assert.True(t, p.JustFilled)
		assert.True(t, p.AwaitingReview)
		assert.Equal(t, 1, p.CurrentCardIndex)
		assert.Equal(t, 10, p.StampsOnCurrent)

		_, err = svc.AddStamp(ctx, primary.AddStampRequest{Reason: "one too many"})
		assert.ErrorIs(t, err, card.ErrAwaitingReview)
	})

	t.Run("stamp after advance opens the next card", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 10)
		_, err := svc.AdvanceCard(ctx)
		require.NoError(t, err)

		stamp, err := svc.AddStamp(ctx, primary.AddStampRequest{Reason: "fresh card"})
		require.NoError(t, err)
		assert.Equal(t, 2, stamp.CardIndex)
		assert.Equal(t, 1, stamp.Position)
	})

	t.Run("deleting mid-card leaves a gap and the next stamp fills it", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 5)
		require.NoError(t, svc.DeleteStamp(ctx, "STAMP-003"))

		remaining, err := svc.StampsForCard(ctx, 1)
		require.NoError(t, err)
		positions := make(map[int]bool)
		for _, s := range remaining {
			positions[s.Position] = true
		}
		assert.Equal(t, map[int]bool{1: true, 2: true, 4: true, 5: true}, positions)

		stamp, err := svc.AddStamp(ctx, primary.AddStampRequest{})
		require.NoError(t, err)
		assert.Equal(t, 3, stamp.Position)
	})

	t.Run("non-positive target falls back to the default capacity", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = -5
		svc := newTestStampService(stamps, settings)

		stamp, err := svc.AddStamp(ctx, primary.AddStampRequest{})
		require.NoError(t, err)
		assert.Equal(t, card.DefaultCapacity, stamp.Capacity)
	})

	t.Run("successful stamp clears the escalation counter", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		settings.record.EscalationCount = 4
		svc := newTestStampService(stamps, settings)

		_, err := svc.AddStamp(ctx, primary.AddStampRequest{})
		require.NoError(t, err)
		assert.Equal(t, 0, settings.record.EscalationCount)
	})
}

func TestEditReason(t *testing.T) {
	ctx := context.Background()

	t.Run("edits a stamp on the open card", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 3)
		stamp, err := svc.EditReason(ctx, "STAMP-002", "actually it was the standup")
		require.NoError(t, err)
		assert.Equal(t, "actually it was the standup", stamp.Reason)
	})

	t.Run("rejects edits on an acknowledged card", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 10)
		_, err := svc.AdvanceCard(ctx)
		require.NoError(t, err)

		_, err = svc.EditReason(ctx, "STAMP-004", "too late")
		assert.ErrorIs(t, err, card.ErrRecordLocked)
	})

	t.Run("unknown stamp returns an error", func(t *testing.T) {
		svc := newTestStampService(newMockStampRepository(), newMockSettingsRepository())
		_, err := svc.EditReason(ctx, "STAMP-999", "nope")
		assert.Error(t, err)
	})
}

func TestDeleteStamp(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects deletes on an acknowledged card", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 10)
		_, err := svc.AdvanceCard(ctx)
		require.NoError(t, err)

		err = svc.DeleteStamp(ctx, "STAMP-001")
		assert.ErrorIs(t, err, card.ErrRecordLocked)
	})

	t.Run("open-card stamps stay deletable after an earlier card locks", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 10)
		_, err := svc.AdvanceCard(ctx)
		require.NoError(t, err)
		addStamps(t, svc, 3)

		err = svc.DeleteStamp(ctx, "STAMP-012")
		assert.NoError(t, err)
	})
}

func TestAdvanceCard(t *testing.T) {
	ctx := context.Background()

	t.Run("acknowledges the filled card", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 10)
		acknowledged, err := svc.AdvanceCard(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, acknowledged)
		assert.Equal(t, 1, settings.record.LastAcknowledgedCard)
	})

	t.Run("rejects advance with no filled card", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 4)
		_, err := svc.AdvanceCard(ctx)
		assert.ErrorIs(t, err, card.ErrInvalidTransition)
	})

	t.Run("repeated advance is rejected", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 10
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 10)
		_, err := svc.AdvanceCard(ctx)
		require.NoError(t, err)
		_, err = svc.AdvanceCard(ctx)
		assert.ErrorIs(t, err, card.ErrInvalidTransition)
	})
}

func TestProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("empty ledger", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 20
		svc := newTestStampService(stamps, settings)

		p, err := svc.Progress(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, p.TotalStamps)
		assert.Equal(t, 0, p.CompletedCards)
		assert.False(t, p.JustFilled)
		assert.False(t, p.AwaitingReview)
		assert.Equal(t, 1, p.CurrentCardIndex)
		assert.Equal(t, 0, p.StampsOnCurrent)
		assert.False(t, p.StampedToday)
	})

	t.Run("stamps spill onto the second card after advance", func(t *testing.T) {
		stamps := newMockStampRepository()
		settings := newMockSettingsRepository()
		settings.record.TargetStamps = 20
		svc := newTestStampService(stamps, settings)

		addStamps(t, svc, 20)
		_, err := svc.AdvanceCard(ctx)
		require.NoError(t, err)
		addStamps(t, svc, 5)

		p, err := svc.Progress(ctx)
		require.NoError(t, err)
		assert.Equal(t, 25, p.TotalStamps)
		assert.Equal(t, 1, p.CompletedCards)
		assert.Equal(t, 2, p.CurrentCardIndex)
		assert.Equal(t, 5, p.StampsOnCurrent)
		assert.True(t, p.StampedToday)

		first, err := svc.StampsForCard(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, first, 20)
		for _, s := range first {
			assert.True(t, s.Locked)
		}
		second, err := svc.StampsForCard(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, second, 5)
		for _, s := range second {
			assert.False(t, s.Locked)
		}
	})
}

func TestResetAll(t *testing.T) {
	ctx := context.Background()

	stamps := newMockStampRepository()
	settings := newMockSettingsRepository()
	settings.record.TargetStamps = 10
	settings.record.CompanyName = "Initech"
	svc := newTestStampService(stamps, settings)

	addStamps(t, svc, 10)
	_, err := svc.AdvanceCard(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll(ctx))

	listed, err := svc.ListStamps(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Equal(t, 0, settings.record.LastAcknowledgedCard)
	assert.Empty(t, settings.record.CompanyName)

	p, err := svc.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentCardIndex)
}

func TestGrumble(t *testing.T) {
	ctx := context.Background()

	stamps := newMockStampRepository()
	settings := newMockSettingsRepository()
	svc := newTestStampService(stamps, settings)

	for want := 1; want <= EscalationThreshold; want++ {
		got, err := svc.Grumble(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, EscalationThreshold, settings.record.EscalationCount)
}

func TestListStamps(t *testing.T) {
	ctx := context.Background()

	stamps := newMockStampRepository()
	settings := newMockSettingsRepository()
	settings.record.TargetStamps = 10
	svc := newTestStampService(stamps, settings)

	addStamps(t, svc, 3)
	listed, err := svc.ListStamps(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	// Newest first.
	assert.Equal(t, "STAMP-003", listed[0].ID)
	assert.Equal(t, "STAMP-001", listed[2].ID)
}

func TestAddStampRepoError(t *testing.T) {
	stamps := newMockStampRepository()
	stamps.listErr = fmt.Errorf("disk on fire")
	settings := newMockSettingsRepository()
	svc := newTestStampService(stamps, settings)

	_, err := svc.AddStamp(context.Background(), primary.AddStampRequest{})
	assert.ErrorContains(t, err, "failed to load stamps")
}
