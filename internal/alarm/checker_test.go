package alarm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/notify"
	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

// fixedSource serves a static alarm list.
type fixedSource struct {
	alarms []Alarm
	err    error
}

func (s *fixedSource) ListAlarms(context.Context, string) ([]Alarm, error) {
	return s.alarms, s.err
}

// saturday 2026-03-14 07:30 local
var checkerNow = time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)

func newTestChecker(t *testing.T, source Source) (*Checker, *store.FakeClock, *[]string) {
	t.Helper()
	clock := store.NewFakeClock(checkerNow)
	var fired []string
	notifier := notify.Func(func(_ context.Context, title, _ string) {
		fired = append(fired, title)
	})
	c, err := NewChecker(source, notifier, "local", zap.NewNop(), WithClock(clock))
	require.NoError(t, err)
	return c, clock, &fired
}

func TestCheckFiresMatchingAlarm(t *testing.T) {
	source := &fixedSource{alarms: []Alarm{
		{ID: "a1", Title: "Wake up", ScheduledTime: "07:30:00", DaysOfWeek: []int{6}, IsActive: true},
		{ID: "a2", Title: "Later", ScheduledTime: "08:00:00", DaysOfWeek: []int{6}, IsActive: true},
	}}
	c, _, fired := newTestChecker(t, source)

	c.Check(context.Background())

	assert.Equal(t, []string{"Wake up"}, *fired)
}

func TestCheckSkipsInactiveAndWrongWeekday(t *testing.T) {
	source := &fixedSource{alarms: []Alarm{
		{ID: "a1", Title: "Disabled", ScheduledTime: "07:30:00", DaysOfWeek: []int{6}, IsActive: false},
		{ID: "a2", Title: "Weekday only", ScheduledTime: "07:30:00", DaysOfWeek: []int{1, 2, 3, 4, 5}, IsActive: true},
	}}
	c, _, fired := newTestChecker(t, source)

	c.Check(context.Background())

	assert.Empty(t, *fired)
}

func TestCheckDeduplicatesWithinMinute(t *testing.T) {
	source := &fixedSource{alarms: []Alarm{
		{ID: "a1", Title: "Wake up", ScheduledTime: "07:30:00", DaysOfWeek: []int{6}, IsActive: true},
	}}
	c, clock, fired := newTestChecker(t, source)

	c.Check(context.Background())
	clock.Advance(30 * time.Second)
	c.Check(context.Background())

	assert.Len(t, *fired, 1)
}

func TestCheckFiresAgainNextWeek(t *testing.T) {
	source := &fixedSource{alarms: []Alarm{
		{ID: "a1", Title: "Wake up", ScheduledTime: "07:30:00", DaysOfWeek: []int{6}, IsActive: true},
	}}
	c, clock, fired := newTestChecker(t, source)

	c.Check(context.Background())
	clock.Advance(7 * 24 * time.Hour)
	c.Check(context.Background())

	assert.Len(t, *fired, 2)
}

func TestCheckToleratesSourceError(t *testing.T) {
	c, _, fired := newTestChecker(t, &fixedSource{err: errors.New("db closed")})

	c.Check(context.Background())

	assert.Empty(t, *fired)
}

func TestCheckerStartStop(t *testing.T) {
	c, _, _ := newTestChecker(t, &fixedSource{})

	require.NoError(t, c.Start())
	assert.True(t, c.Running())
	assert.Error(t, c.Start())

	c.Stop()
	assert.False(t, c.Running())
	c.Stop()
}

func TestAlarmValidate(t *testing.T) {
	valid := Alarm{Title: "Wake up", ScheduledTime: "07:30:00", DaysOfWeek: []int{0, 6}}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		alarm Alarm
	}{
		{"missing title", Alarm{ScheduledTime: "07:30:00", DaysOfWeek: []int{1}}},
		{"bad time", Alarm{Title: "t", ScheduledTime: "7:30", DaysOfWeek: []int{1}}},
		{"no weekdays", Alarm{Title: "t", ScheduledTime: "07:30:00"}},
		{"weekday out of range", Alarm{Title: "t", ScheduledTime: "07:30:00", DaysOfWeek: []int{7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.alarm.Validate())
		})
	}
}

func TestAlarmNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"seconds dropped", "07:30:15", "07:30:00"},
		{"already zero", "07:30:00", "07:30:00"},
		{"unparseable left alone", "7:30", "7:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Alarm{ScheduledTime: tt.in}
			a.Normalize()
			assert.Equal(t, tt.want, a.ScheduledTime)
		})
	}
}

func TestCheckFiresNormalizedAlarm(t *testing.T) {
	a := Alarm{ID: "a1", Title: "Wake up", ScheduledTime: "07:30:15", DaysOfWeek: []int{6}, IsActive: true}
	a.Normalize()
	c, _, fired := newTestChecker(t, &fixedSource{alarms: []Alarm{a}})

	c.Check(context.Background())

	assert.Equal(t, []string{"Wake up"}, *fired)
}
