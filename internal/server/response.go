package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/learno/internal/session"
	"github.com/abhisek/learno/internal/tutor"
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// badRequestError is a request validation failure. Its detail is shown
// to the caller verbatim.
type badRequestError struct {
	detail string
}

func (e *badRequestError) Error() string { return e.detail }

func badRequest(format string, args ...any) error {
	return &badRequestError{detail: fmt.Sprintf(format, args...)}
}

func (s *Server) ok(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope{Status: "success", Message: message, Data: data})
}

// fail maps an error to its status code and writes the error envelope.
// The message leads with a stable code so clients can branch without
// parsing prose.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "path", c.Request.URL.Path, "code", code, "error", err)
	} else {
		s.log.Warn("request rejected", "path", c.Request.URL.Path, "code", code, "error", err)
	}
	c.JSON(status, envelope{
		Status:  "error",
		Message: fmt.Sprintf("%s: %s", code, err.Error()),
	})
}

func classify(err error) (int, string) {
	var bad *badRequestError
	switch {
	case errors.As(err, &bad):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND"
	case errors.Is(err, session.ErrExpired):
		return http.StatusGone, "SESSION_EXPIRED"
	case errors.Is(err, tutor.ErrLessonNotAvailable):
		return http.StatusBadRequest, "LESSON_NOT_AVAILABLE"
	case errors.Is(err, tutor.ErrAIService):
		return http.StatusServiceUnavailable, "AI_SERVICE_ERROR"
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
