package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/habit"
)

func (s *Server) handleListHabits(c echo.Context) error {
	return c.JSON(http.StatusOK, s.services.Habits.List())
}

func (s *Server) handleCreateHabit(c echo.Context) error {
	var req habit.CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.services.Habits.Create(req)
	if err != nil {
		s.logger.Warn("invalid habit create request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetHabit(c echo.Context) error {
	h, ok := s.services.Habits.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "habit not found")
	}
	return c.JSON(http.StatusOK, h)
}

func (s *Server) handleDeleteHabit(c echo.Context) error {
	s.services.Habits.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// ToggleHabitRequest is the request body for POST /api/v1/habits/:id/toggle.
type ToggleHabitRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (s *Server) handleToggleHabit(c echo.Context) error {
	var req ToggleHabitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id := c.Param("id")
	if err := s.services.Habits.Toggle(id, req.Date); err != nil {
		if errors.Is(err, habit.ErrInvalidDate) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h, ok := s.services.Habits.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "habit not found")
	}
	return c.JSON(http.StatusOK, h)
}
