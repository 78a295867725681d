package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Alwaysrakesh/Zen-Grow/internal/focus"
	"github.com/Alwaysrakesh/Zen-Grow/internal/task"
)

var summaryNow = time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)

func completedTask(priority task.Priority, at time.Time) task.Task {
	return task.Task{Title: "t", Priority: priority, Completed: true, CompletedAt: &at}
}

func session(typ focus.SessionType, minutes int, at time.Time) focus.Session {
	return focus.Session{Type: typ, Duration: minutes, CompletedAt: &at}
}

func TestBuildCounts(t *testing.T) {
	earlier := summaryNow.Add(-3 * time.Hour)
	yesterday := summaryNow.Add(-24 * time.Hour)

	tasks := []task.Task{
		completedTask(task.PriorityMedium, earlier),
		completedTask(task.PriorityLow, earlier),
		completedTask(task.PriorityHigh, yesterday),
		{Title: "open", Priority: task.PriorityHigh},
	}
	sessions := []focus.Session{
		session(focus.TypePomodoro, 25, earlier),
		session(focus.TypeDeepWork, 90, earlier),
		session(focus.TypeShortBreak, 5, earlier),
		session(focus.TypePomodoro, 25, yesterday),
		{Type: focus.TypePomodoro, Duration: 25}, // unfinished, ignored
	}

	s := Build(tasks, sessions, summaryNow)

	assert.Equal(t, "2026-03-14", s.Date)
	assert.Equal(t, 2, s.TasksCompleted)
	assert.Equal(t, 115, s.FocusMinutes)
	assert.Equal(t, 1, s.MindfulBreaks)
}

func TestBuildInsights(t *testing.T) {
	earlier := summaryNow.Add(-time.Hour)

	t.Run("exceptional day", func(t *testing.T) {
		var tasks []task.Task
		for i := 0; i < 6; i++ {
			tasks = append(tasks, completedTask(task.PriorityMedium, earlier))
		}
		sessions := []focus.Session{
			session(focus.TypeDeepWork, 130, earlier),
			session(focus.TypeShortBreak, 5, earlier),
		}

		s := Build(tasks, sessions, summaryNow)

		assert.Contains(t, s.Insights, "Exceptional productivity today! You completed more tasks than usual.")
		assert.Contains(t, s.Insights, "Great focus stamina! You maintained deep concentration for extended periods.")
		assert.Contains(t, s.Insights, "You remembered to take breaks - excellent for sustained productivity!")
	})

	t.Run("moderate day", func(t *testing.T) {
		tasks := []task.Task{completedTask(task.PriorityMedium, earlier)}
		sessions := []focus.Session{session(focus.TypeDeepWork, 90, earlier)}

		s := Build(tasks, sessions, summaryNow)

		assert.Contains(t, s.Insights, "You completed 1 task(s) today.")
		assert.Contains(t, s.Insights, "Good balance of focused work sessions today.")
	})

	t.Run("empty day falls back", func(t *testing.T) {
		s := Build(nil, nil, summaryNow)

		assert.Equal(t, []string{"Today was a fresh start. Tomorrow brings new opportunities."}, s.Insights)
	})
}

func TestBuildSuggestions(t *testing.T) {
	earlier := summaryNow.Add(-time.Hour)

	t.Run("quiet day gets all nudges", func(t *testing.T) {
		tasks := []task.Task{
			{Title: "a", Priority: task.PriorityHigh},
			{Title: "b", Priority: task.PriorityHigh},
		}

		s := Build(tasks, nil, summaryNow)

		assert.Equal(t, []string{
			"Focus on your 2 high-priority task(s) tomorrow morning when energy is highest.",
			"Try to increase your focused work time tomorrow with longer deep work sessions.",
			"Remember to schedule regular breaks tomorrow to maintain energy levels.",
			"Start tomorrow with a 5-minute mindfulness exercise to set a positive tone.",
		}, s.Suggestions)
	})

	t.Run("full day keeps only the closer", func(t *testing.T) {
		sessions := []focus.Session{
			session(focus.TypeDeepWork, 90, earlier),
			session(focus.TypeShortBreak, 5, earlier),
		}

		s := Build(nil, sessions, summaryNow)

		assert.Equal(t, []string{
			"Start tomorrow with a 5-minute mindfulness exercise to set a positive tone.",
		}, s.Suggestions)
	})
}
