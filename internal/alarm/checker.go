// Package alarm schedules clock-time alarms and the periodic checker that
// fires them.
package alarm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/notify"
	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

// Source lists the alarms the checker watches. The persistence layer
// implements it.
type Source interface {
	ListAlarms(ctx context.Context, userID string) ([]Alarm, error)
}

// Checker periodically matches active alarms against the wall clock and
// fires a notification for each match. A fired alarm is remembered by
// (id, time, weekday) so one scheduled minute triggers at most once; the
// memory is dropped when the calendar day changes.
type Checker struct {
	source   Source
	notifier notify.Notifier
	clock    store.Clock
	logger   *zap.Logger
	interval time.Duration
	userID   string

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	triggered map[string]struct{}
	lastDay   string
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithInterval sets the check interval. Default 30 seconds.
func WithInterval(d time.Duration) CheckerOption {
	return func(c *Checker) {
		c.interval = d
	}
}

// WithClock overrides the wall clock.
func WithClock(clock store.Clock) CheckerOption {
	return func(c *Checker) {
		c.clock = clock
	}
}

// NewChecker creates an alarm checker for one user's alarms.
func NewChecker(source Source, notifier notify.Notifier, userID string, logger *zap.Logger, opts ...CheckerOption) (*Checker, error) {
	if source == nil {
		return nil, fmt.Errorf("source cannot be nil")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Checker{
		source:    source,
		notifier:  notifier,
		clock:     store.SystemClock{},
		logger:    logger,
		interval:  30 * time.Second,
		userID:    userID,
		triggered: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start begins the periodic check. Starting a running checker is an error.
func (c *Checker) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return fmt.Errorf("alarm checker is already running")
	}
	c.stopCh = make(chan struct{})
	c.running = true

	c.logger.Info("alarm checker started",
		zap.Duration("interval", c.interval),
		zap.String("user_id", c.userID),
	)
	go c.run(c.stopCh)
	return nil
}

// Stop cancels the periodic check. Idempotent.
func (c *Checker) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.running = false
	close(c.stopCh)
	c.logger.Info("alarm checker stopped")
}

// Running reports whether the checker is active.
func (c *Checker) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Checker) run(stopCh chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Check immediately so an alarm scheduled for the current minute is not
	// missed while waiting out the first interval.
	c.Check(context.Background())

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			c.Check(context.Background())
		}
	}
}

// Check runs one pass over the alarms. Exported so callers and tests can
// drive the checker without its timer.
func (c *Checker) Check(ctx context.Context) {
	alarms, err := c.source.ListAlarms(ctx, c.userID)
	if err != nil {
		c.logger.Warn("failed to list alarms", zap.Error(err))
		return
	}

	now := c.clock.Now()
	clockTime := fmt.Sprintf("%02d:%02d:00", now.Hour(), now.Minute())
	weekday := int(now.Weekday())
	day := now.Format("2006-01-02")

	for _, a := range alarms {
		if !a.matchesAt(clockTime, weekday) {
			continue
		}
		key := fmt.Sprintf("%s-%s-%d", a.ID, clockTime, weekday)
		if !c.markTriggered(key, day) {
			continue
		}

		c.logger.Info("alarm triggered",
			zap.String("alarm_id", a.ID),
			zap.String("type", a.Type),
			zap.String("scheduled_time", a.ScheduledTime),
		)
		c.notifier.Notify(ctx, a.Title, a.Message)
	}
}

// markTriggered records the trigger key and reports whether it was new.
// The set resets on day rollover so keys from yesterday cannot pile up.
func (c *Checker) markTriggered(key, day string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if day != c.lastDay {
		c.triggered = make(map[string]struct{})
		c.lastDay = day
	}
	if _, seen := c.triggered[key]; seen {
		return false
	}
	c.triggered[key] = struct{}{}
	return true
}
