package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/task"
)

func (s *Server) handleListTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, s.services.Tasks.List())
}

func (s *Server) handleCreateTask(c echo.Context) error {
	var req task.CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.services.Tasks.Create(req)
	if err != nil {
		s.logger.Warn("invalid task create request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetTask(c echo.Context) error {
	t, ok := s.services.Tasks.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) handleUpdateTask(c echo.Context) error {
	var u task.Updates
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid priority")
	}

	id := c.Param("id")
	s.services.Tasks.Update(id, u)

	t, ok := s.services.Tasks.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	s.services.Tasks.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
