package habit

import "time"

// Frequency describes how often a habit is meant to be performed.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// Habit is a tracked recurring behavior. Streak and BestStreak are derived
// from Completions and recomputed on every toggle; BestStreak never
// decreases over the habit's lifetime.
type Habit struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Frequency   Frequency    `json:"frequency"`
	TargetDays  []int        `json:"target_days,omitempty"` // 0 = Sunday
	Color       string       `json:"color"`
	Icon        string       `json:"icon,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Streak      int          `json:"streak"`
	BestStreak  int          `json:"best_streak"`
	Completions []Completion `json:"completions"`
}

// Completion records one calendar day of a habit. At most one record exists
// per (habit, date); toggling an existing date flips Completed instead of
// inserting a duplicate.
type Completion struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
	Note      string `json:"note,omitempty"`
}

// CreateRequest holds the caller-supplied fields for a new habit. Streak
// fields start at zero and the completion list starts empty.
type CreateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency"`
	TargetDays  []int     `json:"target_days,omitempty"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon,omitempty"`
}
