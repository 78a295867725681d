package alarm

import (
	"fmt"
	"time"
)

// TimeLayout is the clock-time format alarms are scheduled at.
const TimeLayout = "15:04:05"

// Alarm is a clock-time alarm bound to specific weekdays. Alarms are durable
// entities owned by the persistence layer and keyed by user.
type Alarm struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	ScheduledTime string `json:"scheduled_time"` // HH:MM:SS
	DaysOfWeek    []int  `json:"days_of_week"`   // 0 = Sunday
	IsActive      bool   `json:"is_active"`
	SoundEnabled  bool   `json:"sound_enabled"`
}

// Validate checks the schedulable fields.
func (a Alarm) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("title is required")
	}
	if _, err := time.Parse(TimeLayout, a.ScheduledTime); err != nil {
		return fmt.Errorf("invalid scheduled time %q: %w", a.ScheduledTime, err)
	}
	if len(a.DaysOfWeek) == 0 {
		return fmt.Errorf("at least one weekday is required")
	}
	for _, d := range a.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("invalid weekday %d", d)
		}
	}
	return nil
}

// Normalize forces the scheduled time's seconds to zero. Alarms fire at
// minute granularity, so a time carrying seconds would otherwise never match
// the checker's clock key. An unparseable time is left for Validate to
// reject.
func (a *Alarm) Normalize() {
	if t, err := time.Parse(TimeLayout, a.ScheduledTime); err == nil {
		a.ScheduledTime = fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
	}
}

// matchesAt reports whether the alarm fires at the given minute. The
// comparison is exact: the write path stores scheduled times with seconds
// forced to zero, matching the checker's clock key.
func (a Alarm) matchesAt(clockTime string, weekday int) bool {
	if !a.IsActive || a.ScheduledTime != clockTime {
		return false
	}
	for _, d := range a.DaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}
