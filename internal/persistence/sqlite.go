// Package persistence stores the durable zengrow entities in SQLite:
// scheduled alarms, wellness reminders, generated schedules, and assistant
// chat history, all keyed by the owning user.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/alarm"
	"github.com/Alwaysrakesh/Zen-Grow/internal/reminder"
	"github.com/Alwaysrakesh/Zen-Grow/internal/schedule"
)

const schema = `
CREATE TABLE IF NOT EXISTS scheduled_alarms (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	type           TEXT NOT NULL,
	title          TEXT NOT NULL,
	message        TEXT NOT NULL,
	scheduled_time TEXT NOT NULL,
	days_of_week   TEXT NOT NULL,
	is_active      INTEGER NOT NULL DEFAULT 1,
	sound_enabled  INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_alarms_user ON scheduled_alarms(user_id);

CREATE TABLE IF NOT EXISTS wellness_reminders (
	id                TEXT PRIMARY KEY,
	user_id           TEXT NOT NULL,
	type              TEXT NOT NULL,
	title             TEXT NOT NULL,
	message           TEXT NOT NULL,
	frequency_minutes INTEGER NOT NULL,
	last_triggered_at TIMESTAMP,
	is_enabled        INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_reminders_user ON wellness_reminders(user_id);

CREATE TABLE IF NOT EXISTS ai_schedules (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	prompt        TEXT NOT NULL,
	schedule_data TEXT NOT NULL,
	is_active     INTEGER NOT NULL DEFAULT 0,
	created_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_schedules_user ON ai_schedules(user_id);

CREATE TABLE IF NOT EXISTS ai_chat_history (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	role        TEXT NOT NULL,
	message     TEXT NOT NULL,
	schedule_id TEXT,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_user ON ai_chat_history(user_id);
`

// DB wraps the SQLite handle with the zengrow data-access methods.
type DB struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for an ephemeral database in tests.
func Open(path string, logger *zap.Logger) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info("database opened", zap.String("path", path))
	return &DB{db: db, logger: logger}, nil
}

// Close closes the database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// --- Scheduled alarms ---

// ListAlarms returns the user's alarms ordered by scheduled time.
func (d *DB) ListAlarms(ctx context.Context, userID string) ([]alarm.Alarm, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, type, title, message, scheduled_time, days_of_week, is_active, sound_enabled
		 FROM scheduled_alarms WHERE user_id = ? ORDER BY scheduled_time`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alarms: %w", err)
	}
	defer rows.Close()

	var alarms []alarm.Alarm
	for rows.Next() {
		var a alarm.Alarm
		var days string
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Message, &a.ScheduledTime, &days, &a.IsActive, &a.SoundEnabled); err != nil {
			return nil, fmt.Errorf("failed to scan alarm: %w", err)
		}
		if err := json.Unmarshal([]byte(days), &a.DaysOfWeek); err != nil {
			return nil, fmt.Errorf("corrupt days_of_week for alarm %s: %w", a.ID, err)
		}
		alarms = append(alarms, a)
	}
	return alarms, rows.Err()
}

// InsertAlarm stores a new alarm and returns it with its assigned id.
func (d *DB) InsertAlarm(ctx context.Context, userID string, a alarm.Alarm) (alarm.Alarm, error) {
	if err := a.Validate(); err != nil {
		return alarm.Alarm{}, err
	}
	a.Normalize()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	days, err := json.Marshal(a.DaysOfWeek)
	if err != nil {
		return alarm.Alarm{}, fmt.Errorf("failed to encode days_of_week: %w", err)
	}

	_, err = d.db.ExecContext(ctx,
		`INSERT INTO scheduled_alarms (id, user_id, type, title, message, scheduled_time, days_of_week, is_active, sound_enabled)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, userID, a.Type, a.Title, a.Message, a.ScheduledTime, string(days), a.IsActive, a.SoundEnabled)
	if err != nil {
		return alarm.Alarm{}, fmt.Errorf("failed to insert alarm: %w", err)
	}
	return a, nil
}

// UpdateAlarm replaces the stored alarm fields.
func (d *DB) UpdateAlarm(ctx context.Context, userID string, a alarm.Alarm) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.Normalize()
	days, err := json.Marshal(a.DaysOfWeek)
	if err != nil {
		return fmt.Errorf("failed to encode days_of_week: %w", err)
	}

	_, err = d.db.ExecContext(ctx,
		`UPDATE scheduled_alarms
		 SET type = ?, title = ?, message = ?, scheduled_time = ?, days_of_week = ?, is_active = ?, sound_enabled = ?
		 WHERE id = ? AND user_id = ?`,
		a.Type, a.Title, a.Message, a.ScheduledTime, string(days), a.IsActive, a.SoundEnabled, a.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to update alarm: %w", err)
	}
	return nil
}

// SetAlarmActive toggles one alarm's active flag.
func (d *DB) SetAlarmActive(ctx context.Context, userID, id string, active bool) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE scheduled_alarms SET is_active = ? WHERE id = ? AND user_id = ?`, active, id, userID)
	if err != nil {
		return fmt.Errorf("failed to toggle alarm: %w", err)
	}
	return nil
}

// DeleteAlarm removes one alarm.
func (d *DB) DeleteAlarm(ctx context.Context, userID, id string) error {
	_, err := d.db.ExecContext(ctx,
		`DELETE FROM scheduled_alarms WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete alarm: %w", err)
	}
	return nil
}

// --- Wellness reminders ---

// ListReminders returns the user's reminders ordered by cadence.
func (d *DB) ListReminders(ctx context.Context, userID string) ([]reminder.Reminder, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, type, title, message, frequency_minutes, last_triggered_at, is_enabled
		 FROM wellness_reminders WHERE user_id = ? ORDER BY frequency_minutes`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []reminder.Reminder
	for rows.Next() {
		var r reminder.Reminder
		var last sql.NullTime
		if err := rows.Scan(&r.ID, &r.Type, &r.Title, &r.Message, &r.FrequencyMinutes, &last, &r.IsEnabled); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		if last.Valid {
			t := last.Time
			r.LastTriggeredAt = &t
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

// SeedDefaultReminders inserts the default wellness reminder set for a user
// that has none yet. Idempotent.
func (d *DB) SeedDefaultReminders(ctx context.Context, userID string) error {
	var count int
	if err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM wellness_reminders WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return fmt.Errorf("failed to count reminders: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, r := range reminder.Defaults() {
		_, err := d.db.ExecContext(ctx,
			`INSERT INTO wellness_reminders (id, user_id, type, title, message, frequency_minutes, is_enabled)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), userID, r.Type, r.Title, r.Message, r.FrequencyMinutes, r.IsEnabled)
		if err != nil {
			return fmt.Errorf("failed to seed reminder %q: %w", r.Type, err)
		}
	}
	d.logger.Info("seeded default wellness reminders", zap.String("user_id", userID))
	return nil
}

// SetReminderEnabled toggles one reminder's enabled flag.
func (d *DB) SetReminderEnabled(ctx context.Context, userID, id string, enabled bool) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE wellness_reminders SET is_enabled = ? WHERE id = ? AND user_id = ?`, enabled, id, userID)
	if err != nil {
		return fmt.Errorf("failed to toggle reminder: %w", err)
	}
	return nil
}

// TouchReminder records when a reminder last fired.
func (d *DB) TouchReminder(ctx context.Context, userID, id string, at time.Time) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE wellness_reminders SET last_triggered_at = ? WHERE id = ? AND user_id = ?`, at, id, userID)
	if err != nil {
		return fmt.Errorf("failed to touch reminder: %w", err)
	}
	return nil
}

// DeleteReminder removes one reminder.
func (d *DB) DeleteReminder(ctx context.Context, userID, id string) error {
	_, err := d.db.ExecContext(ctx,
		`DELETE FROM wellness_reminders WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

// --- AI schedules and chat history ---

// InsertSchedule stores a generated schedule and returns its id.
func (d *DB) InsertSchedule(ctx context.Context, userID, prompt string, data schedule.Generated) (string, error) {
	blob, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode schedule: %w", err)
	}

	id := uuid.NewString()
	_, err = d.db.ExecContext(ctx,
		`INSERT INTO ai_schedules (id, user_id, prompt, schedule_data, is_active, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		id, userID, prompt, string(blob), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert schedule: %w", err)
	}
	return id, nil
}

// GetSchedule loads one generated schedule.
func (d *DB) GetSchedule(ctx context.Context, userID, scheduleID string) (schedule.Generated, error) {
	var blob string
	err := d.db.QueryRowContext(ctx,
		`SELECT schedule_data FROM ai_schedules WHERE id = ? AND user_id = ?`, scheduleID, userID).Scan(&blob)
	if err != nil {
		return schedule.Generated{}, fmt.Errorf("failed to load schedule %s: %w", scheduleID, err)
	}

	var data schedule.Generated
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return schedule.Generated{}, fmt.Errorf("corrupt schedule %s: %w", scheduleID, err)
	}
	return data, nil
}

// SetScheduleActive toggles a schedule's active flag.
func (d *DB) SetScheduleActive(ctx context.Context, userID, scheduleID string, active bool) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE ai_schedules SET is_active = ? WHERE id = ? AND user_id = ?`, active, scheduleID, userID)
	if err != nil {
		return fmt.Errorf("failed to toggle schedule: %w", err)
	}
	return nil
}

// InsertChatMessage appends one assistant chat turn.
func (d *DB) InsertChatMessage(ctx context.Context, userID, role, message, scheduleID string) error {
	var sid sql.NullString
	if scheduleID != "" {
		sid = sql.NullString{String: scheduleID, Valid: true}
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO ai_chat_history (id, user_id, role, message, schedule_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, role, message, sid, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListChatHistory returns the most recent chat turns, oldest first. A
// non-positive limit returns everything.
func (d *DB) ListChatHistory(ctx context.Context, userID string, limit int) ([]schedule.ChatMessage, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats negative LIMIT as unlimited
	}
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, role, message, schedule_id, created_at FROM (
			SELECT id, role, message, schedule_id, created_at
			FROM ai_chat_history WHERE user_id = ?
			ORDER BY created_at DESC, id LIMIT ?
		 ) ORDER BY created_at, id`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	defer rows.Close()

	var messages []schedule.ChatMessage
	for rows.Next() {
		var m schedule.ChatMessage
		var sid sql.NullString
		if err := rows.Scan(&m.ID, &m.Role, &m.Message, &sid, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		m.ScheduleID = sid.String
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
