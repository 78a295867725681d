package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/schedule"
	"github.com/Alwaysrakesh/Zen-Grow/internal/summary"
)

// AssistantRequest is the request body for POST /api/v1/assistant.
type AssistantRequest struct {
	Prompt string          `json:"prompt"`
	Action schedule.Action `json:"action"`
}

// ChatResponse is the reply to an assistant chat action.
type ChatResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleAssistant(c echo.Context) error {
	if s.services.Assistant == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "assistant is not configured")
	}

	var req AssistantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Prompt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt is required")
	}

	ctx := c.Request().Context()
	switch req.Action {
	case schedule.ActionGenerateSchedule, "":
		return c.JSON(http.StatusOK, s.services.Assistant.Generate(ctx, userID(c), req.Prompt))
	case schedule.ActionChat:
		reply, err := s.services.Assistant.Chat(ctx, userID(c), req.Prompt)
		if err != nil {
			s.logger.Error("assistant chat failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusBadGateway, "assistant is unavailable")
		}
		return c.JSON(http.StatusOK, ChatResponse{Message: reply})
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action")
	}
}

func (s *Server) handleAssistantHistory(c echo.Context) error {
	if s.services.Assistant == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "assistant is not configured")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	history, err := s.services.Assistant.History(c.Request().Context(), userID(c), limit)
	if err != nil {
		s.logger.Error("failed to load chat history", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load chat history")
	}
	if history == nil {
		history = []schedule.ChatMessage{}
	}
	return c.JSON(http.StatusOK, history)
}

// ActivateScheduleRequest is the request body for POST /api/v1/schedules/:id/activate.
type ActivateScheduleRequest struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (s *Server) handleActivateSchedule(c echo.Context) error {
	if s.services.Assistant == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "assistant is not configured")
	}

	var req ActivateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
		}
	}

	ds, err := s.services.Assistant.Activate(c.Request().Context(), userID(c), c.Param("id"), req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
	}
	return c.JSON(http.StatusOK, ds)
}

func (s *Server) handleTodaySchedule(c echo.Context) error {
	ds, ok := s.services.Days.Today()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no schedule for today")
	}
	return c.JSON(http.StatusOK, ds)
}

func (s *Server) handleUpdateScheduleItem(c echo.Context) error {
	var u schedule.ItemUpdates
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	s.services.Days.UpdateItem(c.Param("id"), c.Param("itemID"), u)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteScheduleItem(c echo.Context) error {
	s.services.Days.DeleteItem(c.Param("id"), c.Param("itemID"))
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleSummary(c echo.Context) error {
	digest := summary.Build(s.services.Tasks.List(), s.services.Focus.Sessions(), s.clock.Now())
	return c.JSON(http.StatusOK, digest)
}
