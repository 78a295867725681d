// Package habit tracks recurring behaviors, their per-day completion records,
// and the derived streak counters.
package habit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

const instrumentationName = "github.com/Alwaysrakesh/Zen-Grow/internal/habit"

// ErrInvalidDate is returned when a toggle date is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid completion date")

// Service provides habit CRUD and completion toggling on top of an
// observable store. Streak and BestStreak are recomputed inside the same
// store update that records the toggle, so subscribers never observe a habit
// whose derived fields lag its completions.
type Service struct {
	store  *store.Store[Habit]
	clock  store.Clock
	logger *zap.Logger

	meter         metric.Meter
	toggleCounter metric.Int64Counter
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock that defines "today" for streak computation.
func WithClock(c store.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// NewService creates a habit service.
func NewService(logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		clock:  store.SystemClock{},
		logger: logger,
		meter:  otel.Meter(instrumentationName),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.store = store.New(func(h Habit) string { return h.ID }, store.WithClock[Habit](s.clock))
	s.initMetrics()

	return s
}

func (s *Service) initMetrics() {
	var err error

	s.toggleCounter, err = s.meter.Int64Counter(
		"zengrow.habit.toggles_total",
		metric.WithDescription("Total number of habit completion toggles"),
		metric.WithUnit("{toggle}"),
	)
	if err != nil {
		s.logger.Warn("failed to create toggle counter", zap.Error(err))
	}
}

// Create validates the request and appends a new habit with zeroed streak
// counters and an empty completion list.
func (s *Service) Create(req CreateRequest) (Habit, error) {
	if req.Title == "" {
		return Habit{}, errors.New("title is required")
	}
	if !req.Frequency.Valid() {
		return Habit{}, fmt.Errorf("invalid frequency: %q", req.Frequency)
	}

	created := s.store.Add(func(id string, createdAt time.Time) Habit {
		return Habit{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Frequency:   req.Frequency,
			TargetDays:  req.TargetDays,
			Color:       req.Color,
			Icon:        req.Icon,
			CreatedAt:   createdAt,
			Completions: []Completion{},
		}
	})

	s.logger.Debug("habit created",
		zap.String("habit_id", created.ID),
		zap.String("frequency", string(created.Frequency)),
	)
	return created, nil
}

// List returns a snapshot of all habits in creation order.
func (s *Service) List() []Habit {
	return s.store.All()
}

// Get returns the habit with the given id.
func (s *Service) Get(id string) (Habit, bool) {
	return s.store.Get(id)
}

// Delete removes the habit. An unknown id is a silent no-op.
func (s *Service) Delete(id string) {
	s.store.Delete(id)
}

// Toggle flips the completion record for the given date, inserting a
// completed=true record when the date is new, then recomputes Streak and
// BestStreak within the same update. BestStreak only ever ratchets up.
// An unknown habit id is a silent no-op.
func (s *Service) Toggle(habitID, date string) error {
	if _, err := time.ParseInLocation(DateLayout, date, time.UTC); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	today := s.clock.Now()
	s.store.Update(habitID, func(h Habit) Habit {
		completions := make([]Completion, len(h.Completions))
		copy(completions, h.Completions)

		found := false
		for i, c := range completions {
			if c.Date == date {
				completions[i].Completed = !c.Completed
				found = true
				break
			}
		}
		if !found {
			completions = append(completions, Completion{Date: date, Completed: true})
		}

		h.Completions = completions
		h.Streak = CurrentStreak(completions, today)
		if h.Streak > h.BestStreak {
			h.BestStreak = h.Streak
		}
		return h
	})

	if s.toggleCounter != nil {
		s.toggleCounter.Add(context.Background(), 1)
	}
	return nil
}

// Subscribe registers fn to run after every habit mutation.
func (s *Service) Subscribe(fn func()) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}
