// Package task owns the in-memory task collection and its lifecycle rules.
package task

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

// ErrInvalidPriority is returned when a request carries an unknown priority.
var ErrInvalidPriority = errors.New("invalid priority")

// Service provides task CRUD on top of an observable store.
type Service struct {
	store  *store.Store[Task]
	clock  store.Clock
	logger *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for completion timestamps.
func WithClock(c store.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// NewService creates a task service.
func NewService(logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		clock:  store.SystemClock{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.store = store.New(func(t Task) string { return t.ID }, store.WithClock[Task](s.clock))

	return s
}

// Create validates the request and appends a new task with server-assigned
// id and creation timestamp.
func (s *Service) Create(req CreateRequest) (Task, error) {
	if req.Title == "" {
		return Task{}, errors.New("title is required")
	}
	if !req.Priority.Valid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, req.Priority)
	}
	if req.EstimatedMinutes < 0 {
		return Task{}, fmt.Errorf("estimated minutes cannot be negative: %d", req.EstimatedMinutes)
	}

	created := s.store.Add(func(id string, createdAt time.Time) Task {
		return Task{
			ID:               id,
			Title:            req.Title,
			Priority:         req.Priority,
			EstimatedMinutes: req.EstimatedMinutes,
			CreatedAt:        createdAt,
		}
	})

	s.logger.Debug("task created",
		zap.String("task_id", created.ID),
		zap.String("priority", string(created.Priority)),
	)
	return created, nil
}

// List returns a snapshot of all tasks in creation order.
func (s *Service) List() []Task {
	return s.store.All()
}

// Get returns the task with the given id.
func (s *Service) Get(id string) (Task, bool) {
	return s.store.Get(id)
}

// Update merges the partial updates into the matching task. Flipping
// Completed to true stamps CompletedAt; flipping it back clears the stamp.
// Both commit atomically with the merge. An unknown id is a silent no-op.
func (s *Service) Update(id string, u Updates) {
	s.store.Update(id, func(t Task) Task {
		if u.Title != nil {
			t.Title = *u.Title
		}
		if u.Priority != nil && u.Priority.Valid() {
			t.Priority = *u.Priority
		}
		if u.EstimatedMinutes != nil && *u.EstimatedMinutes >= 0 {
			t.EstimatedMinutes = *u.EstimatedMinutes
		}
		if u.Completed != nil {
			switch {
			case *u.Completed && !t.Completed:
				now := s.clock.Now()
				t.CompletedAt = &now
			case !*u.Completed:
				t.CompletedAt = nil
			}
			t.Completed = *u.Completed
		}
		return t
	})
}

// Delete removes the task unconditionally. An unknown id is a silent no-op.
func (s *Service) Delete(id string) {
	s.store.Delete(id)
}

// Subscribe registers fn to run after every task mutation.
func (s *Service) Subscribe(fn func()) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}

// CompletedOn returns the tasks completed on the same calendar day as day.
func (s *Service) CompletedOn(day time.Time) []Task {
	y, m, d := day.Date()
	var out []Task
	for _, t := range s.store.All() {
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		cy, cm, cd := t.CompletedAt.Date()
		if cy == y && cm == m && cd == d {
			out = append(out, t)
		}
	}
	return out
}
