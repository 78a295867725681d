package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Action selects the assistant behavior for a prompt.
type Action string

const (
	ActionGenerateSchedule Action = "generate_schedule"
	ActionChat             Action = "chat"
)

// GeneratedItem is one time-blocked activity in a model-generated plan.
// Field names follow the wire format the model is instructed to emit.
type GeneratedItem struct {
	Time     string `json:"time"`    // HH:MM
	EndTime  string `json:"endTime"` // HH:MM
	Activity string `json:"activity"`
	Type     string `json:"type"` // work|break|meal|exercise|meeting|personal|study|leisure
	Priority string `json:"priority,omitempty"`
	Reminder bool   `json:"reminder,omitempty"`
	Details  string `json:"details,omitempty"`
}

// GeneratedReminder is one wellness nudge in a model-generated plan.
type GeneratedReminder struct {
	Time    string `json:"time"` // HH:MM
	Type    string `json:"type"` // water|eye_break|walk|stretch|posture
	Message string `json:"message"`
}

// Generated is the structured plan returned by the model.
type Generated struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Items       []GeneratedItem     `json:"items"`
	Reminders   []GeneratedReminder `json:"reminders"`
}

// emptyGenerated is the fallback used when the model reply cannot be parsed
// or the upstream call fails. Always a valid, empty plan.
func emptyGenerated() Generated {
	return Generated{
		Title:       "Daily Schedule",
		Description: "AI-generated schedule",
		Items:       []GeneratedItem{},
		Reminders:   []GeneratedReminder{},
	}
}

// DayItem is one activated schedule entry the user can check off.
type DayItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	Category     string `json:"category"`   // work|meeting|break|exercise|personal|meal
	Completed    bool   `json:"completed"`
	ReminderTime string `json:"reminder_time,omitempty"` // HH:MM
	Priority     string `json:"priority,omitempty"`
}

// DaySchedule is the activated plan for one calendar date.
type DaySchedule struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Items     []DayItem `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemUpdates is a partial day-item mutation. Nil fields are left untouched.
type ItemUpdates struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// generatedCategories maps model activity types onto day-item categories.
var generatedCategories = map[string]string{
	"work":     "work",
	"meeting":  "meeting",
	"break":    "break",
	"meal":     "meal",
	"exercise": "exercise",
	"study":    "work",
	"leisure":  "personal",
	"personal": "personal",
}

// Materialize converts a generated plan into the activated schedule for a
// date, assigning item ids and defaulting unknown categories to personal.
func (g Generated) Materialize(date string, now time.Time) DaySchedule {
	items := make([]DayItem, 0, len(g.Items))
	for _, it := range g.Items {
		category, ok := generatedCategories[it.Type]
		if !ok {
			category = "personal"
		}
		item := DayItem{
			ID:          uuid.NewString(),
			Title:       it.Activity,
			Description: it.Details,
			StartTime:   it.Time,
			EndTime:     it.EndTime,
			Category:    category,
			Priority:    it.Priority,
		}
		if it.Reminder {
			item.ReminderTime = it.Time
		}
		items = append(items, item)
	}

	return DaySchedule{
		ID:        uuid.NewString(),
		Date:      date,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChatMessage is one turn of the assistant conversation history.
type ChatMessage struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"` // user|assistant
	Message    string    `json:"message"`
	ScheduleID string    `json:"schedule_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
