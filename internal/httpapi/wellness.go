package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/alarm"
	"github.com/Alwaysrakesh/Zen-Grow/internal/reminder"
)

func (s *Server) handleListAlarms(c echo.Context) error {
	alarms, err := s.services.DB.ListAlarms(c.Request().Context(), userID(c))
	if err != nil {
		s.logger.Error("failed to list alarms", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list alarms")
	}
	if alarms == nil {
		alarms = []alarm.Alarm{}
	}
	return c.JSON(http.StatusOK, alarms)
}

func (s *Server) handleCreateAlarm(c echo.Context) error {
	var a alarm.Alarm
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a.ID = ""

	if err := a.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := s.services.DB.InsertAlarm(c.Request().Context(), userID(c), a)
	if err != nil {
		s.logger.Error("failed to create alarm", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create alarm")
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateAlarm(c echo.Context) error {
	var a alarm.Alarm
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a.ID = c.Param("id")

	if err := a.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.services.DB.UpdateAlarm(c.Request().Context(), userID(c), a); err != nil {
		s.logger.Error("failed to update alarm", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update alarm")
	}
	return c.JSON(http.StatusOK, a)
}

// ToggleRequest flips an active/enabled flag.
type ToggleRequest struct {
	Active bool `json:"active"`
}

func (s *Server) handleToggleAlarm(c echo.Context) error {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.services.DB.SetAlarmActive(c.Request().Context(), userID(c), c.Param("id"), req.Active); err != nil {
		s.logger.Error("failed to toggle alarm", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to toggle alarm")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteAlarm(c echo.Context) error {
	if err := s.services.DB.DeleteAlarm(c.Request().Context(), userID(c), c.Param("id")); err != nil {
		s.logger.Error("failed to delete alarm", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete alarm")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListReminders(c echo.Context) error {
	reminders, err := s.services.DB.ListReminders(c.Request().Context(), userID(c))
	if err != nil {
		s.logger.Error("failed to list reminders", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list reminders")
	}
	if reminders == nil {
		reminders = []reminder.Reminder{}
	}
	return c.JSON(http.StatusOK, reminders)
}

func (s *Server) handleToggleReminder(c echo.Context) error {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.services.DB.SetReminderEnabled(c.Request().Context(), userID(c), c.Param("id"), req.Active); err != nil {
		s.logger.Error("failed to toggle reminder", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to toggle reminder")
	}
	return c.NoContent(http.StatusNoContent)
}

// SnoozeRequest is the request body for POST /api/v1/reminders/:id/snooze.
type SnoozeRequest struct {
	Minutes int `json:"minutes"`
}

func (s *Server) handleSnoozeReminder(c echo.Context) error {
	var req SnoozeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Minutes <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "minutes must be positive")
	}

	delay := time.Duration(req.Minutes) * time.Minute
	if err := reminder.Snooze(c.Request().Context(), s.services.DB, userID(c), c.Param("id"), delay, s.clock.Now()); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteReminder(c echo.Context) error {
	if err := s.services.DB.DeleteReminder(c.Request().Context(), userID(c), c.Param("id")); err != nil {
		s.logger.Error("failed to delete reminder", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete reminder")
	}
	return c.NoContent(http.StatusNoContent)
}
