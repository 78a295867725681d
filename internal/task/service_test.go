package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

func newTestService(t *testing.T, now time.Time) (*Service, *store.FakeClock) {
	t.Helper()
	clock := store.NewFakeClock(now)
	return NewService(zap.NewNop(), WithClock(clock)), clock
}

func TestCreate_AssignsServerFields(t *testing.T) {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	created, err := svc.Create(CreateRequest{Title: "write report", Priority: PriorityHigh, EstimatedMinutes: 45})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.False(t, created.Completed)
	assert.Nil(t, created.CompletedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	_, err := svc.Create(CreateRequest{Priority: PriorityLow})
	assert.Error(t, err)

	_, err = svc.Create(CreateRequest{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalidPriority)

	_, err = svc.Create(CreateRequest{Title: "x", Priority: PriorityLow, EstimatedMinutes: -1})
	assert.Error(t, err)
}

func TestUpdate_CompletionStampsTimestamp(t *testing.T) {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	svc, clock := newTestService(t, now)

	created, err := svc.Create(CreateRequest{Title: "x", Priority: PriorityMedium})
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	done := true
	svc.Update(created.ID, Updates{Completed: &done})

	got, ok := svc.Get(created.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, now.Add(2*time.Hour), *got.CompletedAt)

	// Uncompleting clears the stamp.
	undone := false
	svc.Update(created.ID, Updates{Completed: &undone})
	got, _ = svc.Get(created.ID)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)
}

func TestUpdate_CompletingTwiceKeepsOriginalStamp(t *testing.T) {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	svc, clock := newTestService(t, now)

	created, _ := svc.Create(CreateRequest{Title: "x", Priority: PriorityLow})

	done := true
	svc.Update(created.ID, Updates{Completed: &done})
	first, _ := svc.Get(created.ID)

	clock.Advance(time.Hour)
	svc.Update(created.ID, Updates{Completed: &done})
	second, _ := svc.Get(created.ID)

	assert.Equal(t, *first.CompletedAt, *second.CompletedAt)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(t, time.Now())
	created, _ := svc.Create(CreateRequest{Title: "x", Priority: PriorityLow})

	title := "mutated"
	svc.Update("missing", Updates{Title: &title})

	all := svc.List()
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
}

func TestDelete_RemovesTask(t *testing.T) {
	svc, _ := newTestService(t, time.Now())
	created, _ := svc.Create(CreateRequest{Title: "x", Priority: PriorityLow})

	svc.Delete(created.ID)
	assert.Empty(t, svc.List())

	// Deleting again stays silent.
	svc.Delete(created.ID)
	assert.Empty(t, svc.List())
}

func TestCompletedOn_FiltersByCalendarDay(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	svc, clock := newTestService(t, now)

	a, _ := svc.Create(CreateRequest{Title: "today", Priority: PriorityLow})
	b, _ := svc.Create(CreateRequest{Title: "yesterday", Priority: PriorityLow})

	done := true
	svc.Update(a.ID, Updates{Completed: &done})

	clock.Set(now.AddDate(0, 0, -1))
	svc.Update(b.ID, Updates{Completed: &done})
	clock.Set(now)

	completed := svc.CompletedOn(now)
	require.Len(t, completed, 1)
	assert.Equal(t, a.ID, completed[0].ID)
}

func TestSubscribe_NotifiesOnMutations(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	var calls int
	unsub := svc.Subscribe(func() { calls++ })

	created, _ := svc.Create(CreateRequest{Title: "x", Priority: PriorityLow})
	svc.Delete(created.ID)
	assert.Equal(t, 2, calls)

	unsub()
	svc.Create(CreateRequest{Title: "y", Priority: PriorityLow})
	assert.Equal(t, 2, calls)
}
