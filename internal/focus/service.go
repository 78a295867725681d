// Package focus provides the focus-timer session log and the countdown
// runner that feeds it.
package focus

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
	"github.com/Alwaysrakesh/Zen-Grow/internal/task"
)

// Service records completed focus sessions in an append-only observable log.
type Service struct {
	store  *store.Store[Session]
	clock  store.Clock
	logger *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for session timestamps.
func WithClock(c store.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// NewService creates a focus session service.
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
	s.store = store.New(func(sess Session) string { return sess.ID }, store.WithClock[Session](s.clock))

	return s
}

// Start creates a new session stamped with the current time. The session is
// not recorded until Record is called with it; abandoning a session leaves
// no trace in the log.
func (s *Service) Start(t SessionType, durationMinutes int, taskID string) (Session, error) {
	if !t.Valid() {
		return Session{}, fmt.Errorf("invalid session type: %q", t)
	}
	if durationMinutes <= 0 {
		return Session{}, errors.New("duration must be positive")
	}

	sess := Session{
		ID:        uuid.NewString(),
		Type:      t,
		Duration:  durationMinutes,
		TaskID:    taskID,
		StartedAt: s.clock.Now(),
	}
	s.logger.Debug("focus session started",
		zap.String("session_id", sess.ID),
		zap.String("type", string(sess.Type)),
		zap.Int("duration_minutes", sess.Duration),
	)
	return sess, nil
}

// Record stamps the session as completed now and appends it to the log.
func (s *Service) Record(sess Session) Session {
	recorded := s.store.Add(func(_ string, now time.Time) Session {
		// The session keeps the id it was given at start time.
		sess.CompletedAt = &now
		return sess
	})

	s.logger.Info("focus session completed",
		zap.String("session_id", recorded.ID),
		zap.String("type", string(recorded.Type)),
		zap.Int("duration_minutes", recorded.Duration),
	)
	return recorded
}

// Sessions returns a snapshot of all recorded sessions in completion order.
func (s *Service) Sessions() []Session {
	return s.store.All()
}

// TodaySessions returns the sessions completed on the current calendar day.
func (s *Service) TodaySessions() []Session {
	y, m, d := s.clock.Now().Date()
	var out []Session
	for _, sess := range s.store.All() {
		if sess.CompletedAt == nil {
			continue
		}
		cy, cm, cd := sess.CompletedAt.Date()
		if cy == y && cm == m && cd == d {
			out = append(out, sess)
		}
	}
	return out
}

// Subscribe registers fn to run after every recorded session.
func (s *Service) Subscribe(fn func()) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}

// Suggest recommends a session based on the outstanding task workload:
// any high-priority task calls for a long deep-work block, a heavy estimated
// backlog calls for pomodoro slicing, and a light day defaults to a single
// pomodoro.
func Suggest(tasks []task.Task) Suggestion {
	var highPriority, estimated int
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if t.Priority == task.PriorityHigh {
			highPriority++
		}
		if t.EstimatedMinutes > 0 {
			estimated += t.EstimatedMinutes
		} else {
			estimated += 25
		}
	}

	switch {
	case highPriority > 0:
		plural := ""
		if highPriority > 1 {
			plural = "s"
		}
		return Suggestion{
			Text:     fmt.Sprintf("You have %d high-priority task%s. Consider a focused deep work session.", highPriority, plural),
			Type:     TypeDeepWork,
			Duration: 90,
		}
	case estimated > 120:
		return Suggestion{
			Text:     "You have a lot to do today. Break it down with Pomodoro sessions.",
			Type:     TypePomodoro,
			Duration: 25,
		}
	default:
		return Suggestion{
			Text:     "Light workload today. Perfect for mindful productivity.",
			Type:     TypePomodoro,
			Duration: 25,
		}
	}
}
