package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.FakeClock) {
	t.Helper()
	clock := store.NewFakeClock(testToday)
	return NewService(zap.NewNop(), WithClock(clock)), clock
}

func TestCreate_StartsWithZeroStreaks(t *testing.T) {
	svc, _ := newTestService(t)

	h, err := svc.Create(CreateRequest{Title: "meditate", Frequency: FrequencyDaily, Color: "#4ade80"})
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, testToday, h.CreatedAt)
	assert.Zero(t, h.Streak)
	assert.Zero(t, h.BestStreak)
	assert.Empty(t, h.Completions)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(CreateRequest{Frequency: FrequencyDaily})
	assert.Error(t, err)

	_, err = svc.Create(CreateRequest{Title: "x", Frequency: "hourly"})
	assert.Error(t, err)
}

func TestToggle_NewDateInsertsCompletedRecord(t *testing.T) {
	svc, _ := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "read", Frequency: FrequencyDaily})

	require.NoError(t, svc.Toggle(h.ID, day(0)))

	got, ok := svc.Get(h.ID)
	require.True(t, ok)
	require.Len(t, got.Completions, 1)
	assert.Equal(t, Completion{Date: day(0), Completed: true}, got.Completions[0])
	assert.Equal(t, 1, got.Streak)
	assert.Equal(t, 1, got.BestStreak)
}

func TestToggle_ExistingDateFlipsInsteadOfDuplicating(t *testing.T) {
	svc, _ := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "read", Frequency: FrequencyDaily})

	require.NoError(t, svc.Toggle(h.ID, day(0)))
	require.NoError(t, svc.Toggle(h.ID, day(0)))

	got, _ := svc.Get(h.ID)
	require.Len(t, got.Completions, 1)
	assert.False(t, got.Completions[0].Completed)
	assert.Zero(t, got.Streak)
}

func TestToggle_TwiceRestoresPriorStreak(t *testing.T) {
	svc, _ := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "read", Frequency: FrequencyDaily})

	require.NoError(t, svc.Toggle(h.ID, day(1)))
	require.NoError(t, svc.Toggle(h.ID, day(0)))
	before, _ := svc.Get(h.ID)

	require.NoError(t, svc.Toggle(h.ID, day(1)))
	require.NoError(t, svc.Toggle(h.ID, day(1)))

	after, _ := svc.Get(h.ID)
	assert.Equal(t, before.Streak, after.Streak)
	assert.Equal(t, Completion{Date: day(1), Completed: true}, after.Completions[0])
}

func TestToggle_StreakGrowsBackward(t *testing.T) {
	svc, _ := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "run", Frequency: FrequencyDaily})

	for _, d := range []string{day(0), day(1), day(2)} {
		require.NoError(t, svc.Toggle(h.ID, d))
	}
	got, _ := svc.Get(h.ID)
	assert.Equal(t, 3, got.Streak)

	// Back-filling an older consecutive day extends the streak.
	require.NoError(t, svc.Toggle(h.ID, day(3)))
	got, _ = svc.Get(h.ID)
	assert.Equal(t, 4, got.Streak)
	assert.Equal(t, 4, got.BestStreak)

	// Knocking out yesterday leaves only today in the chain.
	require.NoError(t, svc.Toggle(h.ID, day(1)))
	got, _ = svc.Get(h.ID)
	assert.Equal(t, 1, got.Streak)
}

func TestToggle_BestStreakNeverDecreases(t *testing.T) {
	svc, _ := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "run", Frequency: FrequencyDaily})

	require.NoError(t, svc.Toggle(h.ID, day(0)))
	require.NoError(t, svc.Toggle(h.ID, day(1)))
	got, _ := svc.Get(h.ID)
	require.Equal(t, 2, got.BestStreak)

	// Toggling today off drops the streak but not the best.
	require.NoError(t, svc.Toggle(h.ID, day(0)))
	got, _ = svc.Get(h.ID)
	assert.Equal(t, 0, got.Streak)
	assert.Equal(t, 2, got.BestStreak)
}

func TestToggle_InvalidDate(t *testing.T) {
	svc, _ := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "run", Frequency: FrequencyDaily})

	err := svc.Toggle(h.ID, "14-03-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	got, _ := svc.Get(h.ID)
	assert.Empty(t, got.Completions)
}

func TestToggle_UnknownHabitIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Create(CreateRequest{Title: "run", Frequency: FrequencyDaily})

	require.NoError(t, svc.Toggle("missing", day(0)))
	for _, h := range svc.List() {
		assert.Empty(t, h.Completions)
	}
}

func TestToggle_DoesNotMutatePriorSnapshots(t *testing.T) {
	svc, _ := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "run", Frequency: FrequencyDaily})

	require.NoError(t, svc.Toggle(h.ID, day(0)))
	snapshot, _ := svc.Get(h.ID)

	require.NoError(t, svc.Toggle(h.ID, day(0)))
	assert.True(t, snapshot.Completions[0].Completed)
}

func TestSubscribe_FiresOnToggle(t *testing.T) {
	svc, _ := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "run", Frequency: FrequencyDaily})

	var calls int
	unsub := svc.Subscribe(func() { calls++ })
	defer unsub()

	require.NoError(t, svc.Toggle(h.ID, day(0)))
	assert.Equal(t, 1, calls)
}

func TestStreakSpansMidnight(t *testing.T) {
	svc, clock := newTestService(t)
	h, _ := svc.Create(CreateRequest{Title: "run", Frequency: FrequencyDaily})

	require.NoError(t, svc.Toggle(h.ID, day(0)))

	// The next day, yesterday's completion alone no longer reaches today.
	clock.Advance(24 * time.Hour)
	require.NoError(t, svc.Toggle(h.ID, day(-1))) // new "today"

	got, _ := svc.Get(h.ID)
	assert.Equal(t, 2, got.Streak)
}
