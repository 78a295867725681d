package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/focus"
	"github.com/Alwaysrakesh/Zen-Grow/internal/mindfulness"
)

func (s *Server) handleListSessions(c echo.Context) error {
	return c.JSON(http.StatusOK, s.services.Focus.Sessions())
}

func (s *Server) handleTodaySessions(c echo.Context) error {
	sessions := s.services.Focus.TodaySessions()
	if sessions == nil {
		sessions = []focus.Session{}
	}
	return c.JSON(http.StatusOK, sessions)
}

// RecordSessionRequest is the request body for POST /api/v1/focus/sessions.
type RecordSessionRequest struct {
	Type     focus.SessionType `json:"type"`
	Duration int               `json:"duration"` // minutes
	TaskID   string            `json:"task_id,omitempty"`
}

func (s *Server) handleRecordSession(c echo.Context) error {
	var req RecordSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess, err := s.services.Focus.Start(req.Type, req.Duration, req.TaskID)
	if err != nil {
		s.logger.Warn("invalid session record request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, s.services.Focus.Record(sess))
}

func (s *Server) handleSuggestion(c echo.Context) error {
	return c.JSON(http.StatusOK, focus.Suggest(s.services.Tasks.List()))
}

func (s *Server) handleListExercises(c echo.Context) error {
	filter := mindfulness.ExerciseType(c.QueryParam("type"))
	return c.JSON(http.StatusOK, mindfulness.Catalog(filter))
}

func (s *Server) handleListPatterns(c echo.Context) error {
	return c.JSON(http.StatusOK, mindfulness.Patterns)
}

// BodyScanResponse carries the scan sequence and its total length.
type BodyScanResponse struct {
	Parts []mindfulness.BodyPart `json:"parts"`
	Total float64                `json:"total"`
}

func (s *Server) handleBodyScan(c echo.Context) error {
	return c.JSON(http.StatusOK, BodyScanResponse{
		Parts: mindfulness.BodyParts,
		Total: mindfulness.BodyScanTotal(),
	})
}

func (s *Server) handleMeditationPresets(c echo.Context) error {
	return c.JSON(http.StatusOK, mindfulness.MeditationPresets)
}
