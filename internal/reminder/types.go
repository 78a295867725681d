package reminder

import "time"

// Reminder nudges the user at a fixed cadence while enabled. Reminders are
// durable entities owned by the persistence layer and keyed by user.
type Reminder struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	Message          string     `json:"message"`
	FrequencyMinutes int        `json:"frequency_minutes"`
	LastTriggeredAt  *time.Time `json:"last_triggered_at,omitempty"`
	IsEnabled        bool       `json:"is_enabled"`
}

// Due reports whether the reminder should fire at now. A reminder that has
// never fired is due immediately.
func (r Reminder) Due(now time.Time) bool {
	if !r.IsEnabled {
		return false
	}
	if r.LastTriggeredAt == nil {
		return true
	}
	return now.Sub(*r.LastTriggeredAt) >= time.Duration(r.FrequencyMinutes)*time.Minute
}

// Defaults returns the wellness reminder set seeded for a new user.
func Defaults() []Reminder {
	return []Reminder{
		{Type: "water", Title: "Hydration Break", Message: "Time to drink some water! Stay hydrated 💧", FrequencyMinutes: 30, IsEnabled: true},
		{Type: "eye_break", Title: "Eye Rest", Message: "Look away from your screen for 20 seconds 👁️", FrequencyMinutes: 20, IsEnabled: true},
		{Type: "walk", Title: "Movement Break", Message: "Take a short walk to stretch your legs 🚶", FrequencyMinutes: 60, IsEnabled: true},
		{Type: "stretch", Title: "Stretch Break", Message: "Time for a quick stretch session 🙆", FrequencyMinutes: 45, IsEnabled: true},
		{Type: "posture", Title: "Posture Check", Message: "Check and correct your posture 🪑", FrequencyMinutes: 40, IsEnabled: true},
	}
}
