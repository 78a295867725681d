package focus

import "time"

// SessionType names the kind of focus-timer session.
type SessionType string

const (
	TypePomodoro   SessionType = "pomodoro"
	TypeDeepWork   SessionType = "deep-work"
	TypeShortBreak SessionType = "short-break"
)

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	switch t {
	case TypePomodoro, TypeDeepWork, TypeShortBreak:
		return true
	}
	return false
}

// Session is one focus-timer run. It is created when the timer starts and
// recorded in the append-only session log once completed; recorded sessions
// are never mutated.
type Session struct {
	ID          string      `json:"id"`
	Type        SessionType `json:"type"`
	Duration    int         `json:"duration"` // minutes
	TaskID      string      `json:"task_id,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// Suggestion is a workload-based session recommendation.
type Suggestion struct {
	Text     string      `json:"text"`
	Type     SessionType `json:"type"`
	Duration int         `json:"duration"` // minutes
}
