// Package summary builds the end-of-day productivity digest from the day's
// tasks and focus sessions.
package summary

import (
	"fmt"
	"time"

	"github.com/Alwaysrakesh/Zen-Grow/internal/focus"
	"github.com/Alwaysrakesh/Zen-Grow/internal/task"
)

// Summary is the daily digest: counts for the day plus generated insight and
// suggestion lines.
type Summary struct {
	Date           string   `json:"date"` // YYYY-MM-DD
	TasksCompleted int      `json:"tasks_completed"`
	FocusMinutes   int      `json:"focus_minutes"`
	MindfulBreaks  int      `json:"mindful_breaks"`
	Insights       []string `json:"insights"`
	Suggestions    []string `json:"suggestions"`
}

// Build produces the digest for the calendar day containing now. Tasks count
// when completed that day; focus minutes sum the day's completed pomodoro and
// deep-work sessions; mindful breaks count the day's short-break sessions.
func Build(tasks []task.Task, sessions []focus.Session, now time.Time) Summary {
	day := now.Format("2006-01-02")

	var completed, highPriorityIncomplete int
	for _, t := range tasks {
		if t.Completed && t.CompletedAt != nil && sameDay(*t.CompletedAt, now) {
			completed++
		}
		if !t.Completed && t.Priority == task.PriorityHigh {
			highPriorityIncomplete++
		}
	}

	var focusMinutes, shortBreaks int
	for _, s := range sessions {
		if s.CompletedAt == nil || !sameDay(*s.CompletedAt, now) {
			continue
		}
		switch s.Type {
		case focus.TypeShortBreak:
			shortBreaks++
		default:
			focusMinutes += s.Duration
		}
	}

	var insights []string
	if completed > 5 {
		insights = append(insights, "Exceptional productivity today! You completed more tasks than usual.")
	} else if completed > 0 {
		insights = append(insights, fmt.Sprintf("You completed %d task(s) today.", completed))
	}
	if focusMinutes > 120 {
		insights = append(insights, "Great focus stamina! You maintained deep concentration for extended periods.")
	} else if focusMinutes > 60 {
		insights = append(insights, "Good balance of focused work sessions today.")
	}
	if shortBreaks > 0 {
		insights = append(insights, "You remembered to take breaks - excellent for sustained productivity!")
	}
	if len(insights) == 0 {
		insights = append(insights, "Today was a fresh start. Tomorrow brings new opportunities.")
	}

	var suggestions []string
	if highPriorityIncomplete > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Focus on your %d high-priority task(s) tomorrow morning when energy is highest.", highPriorityIncomplete))
	}
	if focusMinutes < 60 {
		suggestions = append(suggestions, "Try to increase your focused work time tomorrow with longer deep work sessions.")
	}
	if shortBreaks == 0 {
		suggestions = append(suggestions, "Remember to schedule regular breaks tomorrow to maintain energy levels.")
	}
	suggestions = append(suggestions, "Start tomorrow with a 5-minute mindfulness exercise to set a positive tone.")

	return Summary{
		Date:           day,
		TasksCompleted: completed,
		FocusMinutes:   focusMinutes,
		MindfulBreaks:  shortBreaks,
		Insights:       insights,
		Suggestions:    suggestions,
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
