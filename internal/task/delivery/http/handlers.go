package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quick-task-capture/internal/middleware"
	"quick-task-capture/pkg/response"
)

// QuickCapture godoc
// @Summary     Capture a task from free text
// @Description Parses any temporal phrase in the title, stores the task, and syncs scheduled tasks to Google Calendar.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickCaptureReq true "Raw task title"
// @Success     200 {object} quickCaptureResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) QuickCapture(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickCaptureReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.QuickCapture(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickCapture: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newQuickCaptureResp(output))
}

// Preview godoc
// @Summary     Preview a title's schedule
// @Description Parses the title without creating anything; drives the inline schedule chip on every keystroke.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Title to parse"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// List godoc
// @Summary     List captured tasks
// @Description Returns the caller's tasks, most recent first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	sc := middleware.ScopeFromContext(c)

	t, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task title
// @Description Replaces the task title and re-runs the temporal parser on it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "New title"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.ScopeFromContext(c)

	t, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task and its calendar event when one exists.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	sc := middleware.ScopeFromContext(c)

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
