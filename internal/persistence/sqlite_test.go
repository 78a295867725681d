package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/alarm"
	"github.com/Alwaysrakesh/Zen-Grow/internal/schedule"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("", zap.NewNop())
	assert.Error(t, err)
}

func TestAlarmRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	inserted, err := db.InsertAlarm(ctx, "local", alarm.Alarm{
		Type:          "wake",
		Title:         "Wake up",
		Message:       "Good morning",
		ScheduledTime: "07:30:00",
		DaysOfWeek:    []int{1, 2, 3, 4, 5},
		IsActive:      true,
		SoundEnabled:  true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, inserted.ID)

	alarms, err := db.ListAlarms(ctx, "local")
	require.NoError(t, err)
	require.Len(t, alarms, 1)
	assert.Equal(t, inserted, alarms[0])

	// Another user sees nothing.
	other, err := db.ListAlarms(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestInsertAlarmNormalizesSeconds(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	inserted, err := db.InsertAlarm(ctx, "local", alarm.Alarm{
		Title:         "Wake up",
		ScheduledTime: "07:30:15",
		DaysOfWeek:    []int{6},
		IsActive:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "07:30:00", inserted.ScheduledTime)

	alarms, err := db.ListAlarms(ctx, "local")
	require.NoError(t, err)
	require.Len(t, alarms, 1)
	assert.Equal(t, "07:30:00", alarms[0].ScheduledTime)
}

func TestAlarmUpdateAndToggle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	inserted, err := db.InsertAlarm(ctx, "local", alarm.Alarm{
		Title:         "Wake up",
		ScheduledTime: "07:30:00",
		DaysOfWeek:    []int{6},
		IsActive:      true,
	})
	require.NoError(t, err)

	inserted.Title = "Wake up early"
	inserted.ScheduledTime = "06:45:00"
	require.NoError(t, db.UpdateAlarm(ctx, "local", inserted))

	require.NoError(t, db.SetAlarmActive(ctx, "local", inserted.ID, false))

	alarms, err := db.ListAlarms(ctx, "local")
	require.NoError(t, err)
	require.Len(t, alarms, 1)
	assert.Equal(t, "Wake up early", alarms[0].Title)
	assert.Equal(t, "06:45:00", alarms[0].ScheduledTime)
	assert.False(t, alarms[0].IsActive)
}

func TestAlarmDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	inserted, err := db.InsertAlarm(ctx, "local", alarm.Alarm{
		Title:         "Wake up",
		ScheduledTime: "07:30:00",
		DaysOfWeek:    []int{6},
	})
	require.NoError(t, err)

	require.NoError(t, db.DeleteAlarm(ctx, "local", inserted.ID))

	alarms, err := db.ListAlarms(ctx, "local")
	require.NoError(t, err)
	assert.Empty(t, alarms)
}

func TestInsertAlarmValidates(t *testing.T) {
	db := newTestDB(t)

	_, err := db.InsertAlarm(context.Background(), "local", alarm.Alarm{Title: "bad time", ScheduledTime: "25:00", DaysOfWeek: []int{1}})
	assert.Error(t, err)
}

func TestSeedDefaultRemindersIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SeedDefaultReminders(ctx, "local"))
	require.NoError(t, db.SeedDefaultReminders(ctx, "local"))

	reminders, err := db.ListReminders(ctx, "local")
	require.NoError(t, err)
	assert.Len(t, reminders, 5)
	for _, r := range reminders {
		assert.True(t, r.IsEnabled)
		assert.Nil(t, r.LastTriggeredAt)
	}
}

func TestTouchAndToggleReminder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.SeedDefaultReminders(ctx, "local"))

	reminders, err := db.ListReminders(ctx, "local")
	require.NoError(t, err)
	target := reminders[0]

	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.TouchReminder(ctx, "local", target.ID, at))
	require.NoError(t, db.SetReminderEnabled(ctx, "local", target.ID, false))

	reminders, err = db.ListReminders(ctx, "local")
	require.NoError(t, err)
	for _, r := range reminders {
		if r.ID != target.ID {
			continue
		}
		require.NotNil(t, r.LastTriggeredAt)
		assert.True(t, r.LastTriggeredAt.Equal(at))
		assert.False(t, r.IsEnabled)
	}
}

func TestDeleteReminder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.SeedDefaultReminders(ctx, "local"))

	reminders, err := db.ListReminders(ctx, "local")
	require.NoError(t, err)
	require.NoError(t, db.DeleteReminder(ctx, "local", reminders[0].ID))

	reminders, err = db.ListReminders(ctx, "local")
	require.NoError(t, err)
	assert.Len(t, reminders, 4)
}

func TestScheduleRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	data := schedule.Generated{
		Title:       "Deep Work Day",
		Description: "A focused day.",
		Items: []schedule.GeneratedItem{
			{Time: "09:00", EndTime: "11:00", Activity: "Write", Type: "work"},
		},
		Reminders: []schedule.GeneratedReminder{
			{Time: "09:30", Type: "water", Message: "Drink water"},
		},
	}

	id, err := db.InsertSchedule(ctx, "local", "a writing day", data)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := db.GetSchedule(ctx, "local", id)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, db.SetScheduleActive(ctx, "local", id, true))

	// Wrong user cannot read it.
	_, err = db.GetSchedule(ctx, "someone-else", id)
	assert.Error(t, err)
}

func TestChatHistoryOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertChatMessage(ctx, "local", "user", "first", ""))
	require.NoError(t, db.InsertChatMessage(ctx, "local", "assistant", "second", "sched-1"))
	require.NoError(t, db.InsertChatMessage(ctx, "local", "user", "third", ""))

	all, err := db.ListChatHistory(ctx, "local", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Message)
	assert.Equal(t, "third", all[2].Message)
	assert.Equal(t, "sched-1", all[1].ScheduleID)
	assert.Empty(t, all[0].ScheduleID)

	recent, err := db.ListChatHistory(ctx, "local", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Message)
	assert.Equal(t, "third", recent[1].Message)
}
