package http

import (
	"github.com/gin-gonic/gin"

	"quick-task-capture/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The preview
// route carries its own rate limit since it is hit on every keystroke.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	tasks.Use(mw.Scope())
	{
		tasks.POST("", h.QuickCapture)
		tasks.POST("/preview", mw.PreviewRateLimit(), h.Preview)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
