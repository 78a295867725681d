package task

import "time"

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single tracked to-do item. CompletedAt is set exactly when
// Completed transitions to true and cleared when it flips back.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Completed        bool       `json:"completed"`
	Priority         Priority   `json:"priority"`
	EstimatedMinutes int        `json:"estimated_minutes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// CreateRequest holds the caller-supplied fields for a new task. The id and
// creation timestamp are server-assigned.
type CreateRequest struct {
	Title            string   `json:"title"`
	Priority         Priority `json:"priority"`
	EstimatedMinutes int      `json:"estimated_minutes,omitempty"`
}

// Updates is a partial task mutation. Nil fields are left untouched.
type Updates struct {
	Title            *string   `json:"title,omitempty"`
	Completed        *bool     `json:"completed,omitempty"`
	Priority         *Priority `json:"priority,omitempty"`
	EstimatedMinutes *int      `json:"estimated_minutes,omitempty"`
}
