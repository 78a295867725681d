package focus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimer_RequiresCallback(t *testing.T) {
	_, err := NewTimer(Session{Duration: 25}, nil)
	assert.Error(t, err)
}

func TestTimer_StepCountsDown(t *testing.T) {
	timer, err := NewTimer(Session{ID: "s1", Duration: 1}, func(Session) {})
	require.NoError(t, err)

	stopCh := make(chan struct{})
	timer.stopCh = stopCh

	done := timer.step(30*time.Second, stopCh)
	assert.False(t, done)
	assert.Equal(t, 30*time.Second, timer.Remaining())

	done = timer.step(30*time.Second, stopCh)
	assert.True(t, done)
	assert.Equal(t, time.Duration(0), timer.Remaining())
}

func TestTimer_StepAfterCancelDoesNotMutate(t *testing.T) {
	timer, err := NewTimer(Session{ID: "s1", Duration: 1}, func(Session) {})
	require.NoError(t, err)

	stopCh := make(chan struct{})
	close(stopCh)

	done := timer.step(30*time.Second, stopCh)
	assert.False(t, done)
	assert.Equal(t, time.Minute, timer.Remaining(), "cancelled tick must leave state untouched")
}

func TestTimer_StartPauseKeepsRemaining(t *testing.T) {
	timer, err := NewTimer(Session{ID: "s1", Duration: 25}, func(Session) {},
		WithTick(time.Hour)) // ticks never fire during the test
	require.NoError(t, err)

	require.NoError(t, timer.Start())
	assert.True(t, timer.Running())
	assert.Error(t, timer.Start(), "double start")

	timer.Pause()
	assert.False(t, timer.Running())
	assert.Equal(t, 25*time.Minute, timer.Remaining())

	// Pause is idempotent.
	timer.Pause()
	assert.False(t, timer.Running())

	require.NoError(t, timer.Start())
	timer.Stop()
}

func TestTimer_ResetRestoresFullDuration(t *testing.T) {
	timer, err := NewTimer(Session{ID: "s1", Duration: 2}, func(Session) {})
	require.NoError(t, err)

	stopCh := make(chan struct{})
	timer.stopCh = stopCh
	timer.step(time.Minute, stopCh)
	require.Equal(t, time.Minute, timer.Remaining())

	timer.Reset()
	assert.Equal(t, 2*time.Minute, timer.Remaining())
	assert.False(t, timer.Running())
}

func TestTimer_CompletesAndReportsSession(t *testing.T) {
	var completions atomic.Int32
	var got atomic.Value

	timer, err := NewTimer(Session{ID: "s1", Type: TypeShortBreak, Duration: 1},
		func(s Session) {
			got.Store(s)
			completions.Add(1)
		},
		WithTick(5*time.Millisecond))
	require.NoError(t, err)

	// Shrink the countdown so the test finishes in a few ticks.
	timer.remaining = 20 * time.Millisecond

	require.NoError(t, timer.Start())

	assert.Eventually(t, func() bool {
		return completions.Load() == 1
	}, 2*time.Second, 5*time.Millisecond)

	assert.False(t, timer.Running())
	assert.Equal(t, "s1", got.Load().(Session).ID)

	// Stop after completion stays a no-op.
	timer.Stop()
	assert.Equal(t, int32(1), completions.Load())
}
