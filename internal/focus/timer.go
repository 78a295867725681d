package focus

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Timer counts a session down to zero on a fixed tick and hands the session
// to onComplete when it finishes. Pause and Stop tear the periodic tick down
// before flipping the running flag, so no further countdown mutation can
// arrive from a prior schedule.
type Timer struct {
	session    Session
	onComplete func(Session)
	tick       time.Duration
	logger     *zap.Logger

	mu        sync.Mutex
	remaining time.Duration
	running   bool
	stopCh    chan struct{}
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithTick overrides the countdown tick interval. Default is one second.
func WithTick(d time.Duration) TimerOption {
	return func(t *Timer) {
		t.tick = d
	}
}

// WithTimerLogger sets the timer's logger.
func WithTimerLogger(logger *zap.Logger) TimerOption {
	return func(t *Timer) {
		t.logger = logger
	}
}

// NewTimer creates a countdown timer for the session. onComplete runs once,
// off the timer goroutine's final tick, when the countdown reaches zero.
func NewTimer(session Session, onComplete func(Session), opts ...TimerOption) (*Timer, error) {
	if onComplete == nil {
		return nil, fmt.Errorf("onComplete callback is required")
	}

	t := &Timer{
		session:    session,
		onComplete: onComplete,
		tick:       time.Second,
		logger:     zap.NewNop(),
		remaining:  time.Duration(session.Duration) * time.Minute,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Start begins or resumes the countdown. Starting a running timer is an
// error; starting a finished timer restarts it from the full duration.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("timer is already running")
	}
	if t.remaining <= 0 {
		t.remaining = time.Duration(t.session.Duration) * time.Minute
	}

	t.stopCh = make(chan struct{})
	t.running = true

	go t.run(t.stopCh)
	return nil
}

// Pause halts the countdown, keeping the remaining time. Pausing a stopped
// timer is a no-op.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
}

// Reset stops the countdown and restores the full session duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
	t.remaining = time.Duration(t.session.Duration) * time.Minute
}

// Stop halts the countdown for good. Idempotent.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
}

// halt cancels the periodic tick. Callers must hold t.mu.
func (t *Timer) halt() {
	if !t.running {
		return
	}
	t.running = false
	close(t.stopCh)
}

// Running reports whether the countdown is ticking.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Remaining returns the time left on the countdown.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Session returns the session this timer counts down.
func (t *Timer) Session() Session {
	return t.session
}

// run drives the countdown until completion or cancellation. stopCh is
// captured at Start time so a Pause/Start cycle cannot cancel the new run.
func (t *Timer) run(stopCh chan struct{}) {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if done := t.step(t.tick, stopCh); done {
				t.onComplete(t.session)
				return
			}
		}
	}
}

// step decrements the countdown by d and reports whether it just finished.
// The check against stopCh closes the race between a Pause and an in-flight
// tick: a tick that lost the race must not mutate state.
func (t *Timer) step(d time.Duration, stopCh chan struct{}) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-stopCh:
		return false
	default:
	}

	t.remaining -= d
	if t.remaining > 0 {
		return false
	}

	t.remaining = 0
	t.running = false
	// Close so later Pause/Stop calls stay no-ops.
	close(t.stopCh)

	t.logger.Debug("countdown finished",
		zap.String("session_id", t.session.ID),
	)
	return true
}
