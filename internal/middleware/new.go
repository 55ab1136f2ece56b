package middleware

import (
	"github.com/gin-gonic/gin"

	"quick-task-capture/internal/model"
	"quick-task-capture/pkg/log"
)

const scopeKey = "scope"

// Middleware bundles the HTTP middlewares for the capture API.
type Middleware struct {
	l       log.Logger
	preview *rateLimiter
}

func New(l log.Logger, previewRatePerMin int) Middleware {
	return Middleware{
		l:       l,
		preview: newRateLimiter(previewRatePerMin),
	}
}

// Scope resolves the caller identity. Identity comes from the X-User-ID
// header set by the upstream gateway; absent means a single-user install.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = "default"
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the Scope resolved by the Scope middleware.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: "default"}
}
