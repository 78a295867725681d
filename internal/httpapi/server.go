// Package httpapi exposes the zengrow services over a JSON HTTP API.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/focus"
	"github.com/Alwaysrakesh/Zen-Grow/internal/habit"
	"github.com/Alwaysrakesh/Zen-Grow/internal/persistence"
	"github.com/Alwaysrakesh/Zen-Grow/internal/schedule"
	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
	"github.com/Alwaysrakesh/Zen-Grow/internal/task"
)

// userIDHeader carries the requesting user. Absent, the single-user default
// applies.
const (
	userIDHeader = "X-User-ID"

	// DefaultUserID identifies the single local user when no header is sent.
	DefaultUserID = "local"
)

// Services bundles everything the API serves. Assistant may be nil when no
// model API key is configured; its endpoints then answer 503.
type Services struct {
	Tasks     *task.Service
	Habits    *habit.Service
	Focus     *focus.Service
	Days      *schedule.DayStore
	Assistant *schedule.Service
	DB        *persistence.DB
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// Server serves the zengrow HTTP API.
type Server struct {
	echo     *echo.Echo
	services Services
	logger   *zap.Logger
	config   *Config
	clock    store.Clock
}

// Option configures a Server.
type Option func(*Server)

// WithClock overrides the wall clock the date-sensitive handlers read.
func WithClock(clock store.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// NewServer creates a new HTTP server.
func NewServer(services Services, logger *zap.Logger, cfg *Config, opts ...Option) (*Server, error) {
	if services.Tasks == nil || services.Habits == nil || services.Focus == nil {
		return nil, fmt.Errorf("task, habit, and focus services are required")
	}
	if services.Days == nil {
		return nil, fmt.Errorf("day store is required")
	}
	if services.DB == nil {
		return nil, fmt.Errorf("database is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8420,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})
	e.Use(NewMetrics(logger).Middleware())

	s := &Server{
		echo:     e,
		services: services,
		logger:   logger,
		config:   cfg,
		clock:    store.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")

	v1.GET("/tasks", s.handleListTasks)
	v1.POST("/tasks", s.handleCreateTask)
	v1.GET("/tasks/:id", s.handleGetTask)
	v1.PATCH("/tasks/:id", s.handleUpdateTask)
	v1.DELETE("/tasks/:id", s.handleDeleteTask)

	v1.GET("/habits", s.handleListHabits)
	v1.POST("/habits", s.handleCreateHabit)
	v1.GET("/habits/:id", s.handleGetHabit)
	v1.DELETE("/habits/:id", s.handleDeleteHabit)
	v1.POST("/habits/:id/toggle", s.handleToggleHabit)

	v1.GET("/focus/sessions", s.handleListSessions)
	v1.GET("/focus/sessions/today", s.handleTodaySessions)
	v1.POST("/focus/sessions", s.handleRecordSession)
	v1.GET("/focus/suggestion", s.handleSuggestion)

	v1.GET("/mindfulness/exercises", s.handleListExercises)
	v1.GET("/mindfulness/patterns", s.handleListPatterns)
	v1.GET("/mindfulness/bodyscan", s.handleBodyScan)
	v1.GET("/mindfulness/meditation", s.handleMeditationPresets)

	v1.GET("/alarms", s.handleListAlarms)
	v1.POST("/alarms", s.handleCreateAlarm)
	v1.PUT("/alarms/:id", s.handleUpdateAlarm)
	v1.POST("/alarms/:id/toggle", s.handleToggleAlarm)
	v1.DELETE("/alarms/:id", s.handleDeleteAlarm)

	v1.GET("/reminders", s.handleListReminders)
	v1.POST("/reminders/:id/toggle", s.handleToggleReminder)
	v1.POST("/reminders/:id/snooze", s.handleSnoozeReminder)
	v1.DELETE("/reminders/:id", s.handleDeleteReminder)

	v1.POST("/assistant", s.handleAssistant)
	v1.GET("/assistant/history", s.handleAssistantHistory)
	v1.POST("/schedules/:id/activate", s.handleActivateSchedule)
	v1.GET("/schedules/today", s.handleTodaySchedule)
	v1.PATCH("/schedules/:id/items/:itemID", s.handleUpdateScheduleItem)
	v1.DELETE("/schedules/:id/items/:itemID", s.handleDeleteScheduleItem)

	v1.GET("/summary", s.handleSummary)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// userID reads the requesting user from the header, defaulting to the
// single-user id.
func userID(c echo.Context) string {
	if id := c.Request().Header.Get(userIDHeader); id != "" {
		return id
	}
	return DefaultUserID
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
