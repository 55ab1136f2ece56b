package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"quick-task-capture/internal/task"
	"quick-task-capture/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
