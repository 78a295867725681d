// Package reminder provides recurring wellness reminders and the periodic
// checker that fires them.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/notify"
	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

// Source reads and touches the reminders the checker watches. The
// persistence layer implements it.
type Source interface {
	ListReminders(ctx context.Context, userID string) ([]Reminder, error)
	TouchReminder(ctx context.Context, userID, id string, at time.Time) error
}

// Checker periodically fires the reminders whose cadence has elapsed and
// records the trigger time back through the source.
type Checker struct {
	source   Source
	notifier notify.Notifier
	clock    store.Clock
	logger   *zap.Logger
	interval time.Duration
	userID   string

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithInterval sets the check interval. Default one minute.
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

// NewChecker creates a wellness reminder checker for one user.
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
		source:   source,
		notifier: notifier,
		clock:    store.SystemClock{},
		logger:   logger,
		interval: time.Minute,
		userID:   userID,
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
		return fmt.Errorf("reminder checker is already running")
	}
	c.stopCh = make(chan struct{})
	c.running = true

	c.logger.Info("reminder checker started",
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
	c.logger.Info("reminder checker stopped")
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

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			c.Check(context.Background())
		}
	}
}

// Check runs one pass over the reminders. Exported so callers and tests can
// drive the checker without its timer. A touch failure is logged and the
// reminder stays due; it will fire again on the next pass.
func (c *Checker) Check(ctx context.Context) {
	reminders, err := c.source.ListReminders(ctx, c.userID)
	if err != nil {
		c.logger.Warn("failed to list reminders", zap.Error(err))
		return
	}

	now := c.clock.Now()
	for _, r := range reminders {
		if !r.Due(now) {
			continue
		}

		c.logger.Info("reminder triggered",
			zap.String("reminder_id", r.ID),
			zap.String("type", r.Type),
			zap.Int("frequency_minutes", r.FrequencyMinutes),
		)
		c.notifier.Notify(ctx, r.Title, r.Message)

		if err := c.source.TouchReminder(ctx, c.userID, r.ID, now); err != nil {
			c.logger.Warn("failed to record reminder trigger",
				zap.String("reminder_id", r.ID),
				zap.Error(err),
			)
		}
	}
}

// Snooze pushes the reminder's next trigger to delay from now.
func (c *Checker) Snooze(ctx context.Context, id string, delay time.Duration) error {
	if err := Snooze(ctx, c.source, c.userID, id, delay, c.clock.Now()); err != nil {
		return err
	}
	c.logger.Debug("reminder snoozed",
		zap.String("reminder_id", id),
		zap.Duration("delay", delay),
	)
	return nil
}

// Snooze pushes one reminder's next trigger to delay from now by back-dating
// its last trigger time through the source.
func Snooze(ctx context.Context, source Source, userID, id string, delay time.Duration, now time.Time) error {
	reminders, err := source.ListReminders(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list reminders: %w", err)
	}

	for _, r := range reminders {
		if r.ID != id {
			continue
		}
		frequency := time.Duration(r.FrequencyMinutes) * time.Minute
		at := now.Add(delay - frequency)
		if err := source.TouchReminder(ctx, userID, id, at); err != nil {
			return fmt.Errorf("failed to snooze reminder: %w", err)
		}
		return nil
	}
	return fmt.Errorf("reminder %q not found", id)
}
