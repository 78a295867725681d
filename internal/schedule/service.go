// Package schedule holds the AI schedule assistant: the OpenAI-backed
// generator, the durable record of generated plans and chat turns, and the
// in-memory store of activated day schedules.
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

const generateSystemPrompt = `You are an expert productivity and time management assistant. Create a comprehensive daily schedule based on the user's request.

IMPORTANT INSTRUCTIONS:
1. Generate a COMPLETE daily schedule from morning to evening (typically 6:00 AM to 10:00 PM)
2. Include all essential activities: work/study blocks, meals, breaks, exercise, personal time
3. Add wellness reminders at strategic intervals (water every 30-45 min, eye breaks every 20-30 min, walks every 2 hours)
4. Make the schedule realistic and sustainable with proper time buffers
5. If user doesn't specify exact activities, create a balanced productive day based on their general request

Return ONLY a valid JSON object (no markdown, no extra text) with this exact structure:
{
  "title": "Descriptive schedule title based on user's goal",
  "description": "Brief 1-2 sentence description of the schedule's focus",
  "items": [
    {
      "time": "HH:MM",
      "endTime": "HH:MM",
      "activity": "Specific activity name",
      "type": "work|break|meal|exercise|meeting|personal|study|leisure",
      "priority": "high|medium|low",
      "reminder": true/false,
      "details": "Optional additional details about the activity"
    }
  ],
  "reminders": [
    {
      "time": "HH:MM",
      "type": "water|eye_break|walk|stretch|posture",
      "message": "Friendly reminder message"
    }
  ]
}`

const chatSystemPrompt = `You are a helpful productivity assistant focused on time management, scheduling, and wellness. Help users create effective schedules and maintain healthy work habits.`

// Repository persists generated schedules and chat history. The persistence
// layer implements it.
type Repository interface {
	InsertSchedule(ctx context.Context, userID, prompt string, data Generated) (string, error)
	GetSchedule(ctx context.Context, userID, scheduleID string) (Generated, error)
	SetScheduleActive(ctx context.Context, userID, scheduleID string, active bool) error
	InsertChatMessage(ctx context.Context, userID, role, message, scheduleID string) error
	ListChatHistory(ctx context.Context, userID string, limit int) ([]ChatMessage, error)
}

// Service answers assistant requests: generating day plans, free-form chat,
// and activating a generated plan into the in-memory day store.
type Service struct {
	llm    LLMClient
	repo   Repository
	days   *DayStore
	clock  store.Clock
	logger *zap.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceClock overrides the wall clock.
func WithServiceClock(c store.Clock) ServiceOption {
	return func(s *Service) {
		s.clock = c
	}
}

// NewService creates the assistant service.
func NewService(llm LLMClient, repo Repository, days *DayStore, logger *zap.Logger, opts ...ServiceOption) (*Service, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm client cannot be nil")
	}
	if repo == nil {
		return nil, fmt.Errorf("repository cannot be nil")
	}
	if days == nil {
		return nil, fmt.Errorf("day store cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		llm:    llm,
		repo:   repo,
		days:   days,
		clock:  store.SystemClock{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerateResult is the assistant's answer to a generate_schedule request.
type GenerateResult struct {
	Schedule   Generated `json:"schedule"`
	ScheduleID string    `json:"schedule_id,omitempty"`
	Message    string    `json:"message"`
}

// Generate asks the model for a day plan. An upstream failure or an
// unparseable reply degrades to the empty fallback plan instead of
// an error; persistence failures are logged and the plan is still returned,
// so a database hiccup never loses the generated schedule.
func (s *Service) Generate(ctx context.Context, userID, prompt string) *GenerateResult {
	user := fmt.Sprintf("Create a detailed daily schedule for: %s. Include specific time blocks from morning to evening.", prompt)

	var generated Generated
	reply, err := s.llm.Complete(ctx, generateSystemPrompt, user, 0.7, 2000)
	if err != nil {
		s.logger.Warn("schedule generation failed, returning fallback",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		generated = emptyGenerated()
	} else {
		generated = parseGenerated(reply, s.logger)
	}

	result := &GenerateResult{
		Schedule: generated,
		Message:  fmt.Sprintf("I've created a schedule for you: %q. Would you like to activate it?", generated.Title),
	}

	scheduleID, err := s.repo.InsertSchedule(ctx, userID, prompt, generated)
	if err != nil {
		s.logger.Error("failed to persist generated schedule",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return result
	}
	result.ScheduleID = scheduleID

	s.recordChat(ctx, userID, "user", prompt, scheduleID)
	assistantNote := fmt.Sprintf("I've created a schedule for you: %q. %s", generated.Title, generated.Description)
	s.recordChat(ctx, userID, "assistant", assistantNote, scheduleID)

	return result
}

// Chat answers a free-form productivity question and records both turns.
func (s *Service) Chat(ctx context.Context, userID, prompt string) (string, error) {
	reply, err := s.llm.Complete(ctx, chatSystemPrompt, prompt, 0.7, 500)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	s.recordChat(ctx, userID, "user", prompt, "")
	s.recordChat(ctx, userID, "assistant", reply, "")
	return reply, nil
}

// Activate materializes a persisted generated schedule into the in-memory
// day store for the given date and marks it active.
func (s *Service) Activate(ctx context.Context, userID, scheduleID, date string) (DaySchedule, error) {
	generated, err := s.repo.GetSchedule(ctx, userID, scheduleID)
	if err != nil {
		return DaySchedule{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	if date == "" {
		date = s.clock.Now().Format("2006-01-02")
	}
	ds := s.days.Save(generated.Materialize(date, s.clock.Now()))

	if err := s.repo.SetScheduleActive(ctx, userID, scheduleID, true); err != nil {
		s.logger.Warn("failed to mark schedule active",
			zap.String("schedule_id", scheduleID),
			zap.Error(err),
		)
	}
	return ds, nil
}

// History returns the most recent chat turns, oldest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]ChatMessage, error) {
	return s.repo.ListChatHistory(ctx, userID, limit)
}

// recordChat persists one chat turn; failures are logged, never surfaced.
func (s *Service) recordChat(ctx context.Context, userID, role, message, scheduleID string) {
	if err := s.repo.InsertChatMessage(ctx, userID, role, message, scheduleID); err != nil {
		s.logger.Warn("failed to record chat message",
			zap.String("role", role),
			zap.Error(err),
		)
	}
}

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\n?(.*?)\\n?```")
	bareJSONPattern   = regexp.MustCompile(`(?s)(\{.*\})`)
)

// parseGenerated extracts the plan object from a model reply, tolerating
// fenced markdown. Anything unparseable degrades to the empty fallback plan.
func parseGenerated(raw string, logger *zap.Logger) Generated {
	jsonText := raw
	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		jsonText = m[1]
	} else if m := bareJSONPattern.FindStringSubmatch(raw); m != nil {
		jsonText = m[1]
	}

	var generated Generated
	if err := json.Unmarshal([]byte(jsonText), &generated); err != nil {
		logger.Warn("failed to parse generated schedule, using fallback", zap.Error(err))
		return emptyGenerated()
	}
	if generated.Items == nil {
		generated.Items = []GeneratedItem{}
	}
	if generated.Reminders == nil {
		generated.Reminders = []GeneratedReminder{}
	}
	return generated
}
