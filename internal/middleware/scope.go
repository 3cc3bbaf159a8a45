package middleware

import (
	"github.com/gin-gonic/gin"

	"ai-todo-backend/internal/model"
)

const (
	scopeKey     = "scope"
	userIDHeader = "X-User-ID"

	// AnonymousUserID is assigned when the client sends no identity. Rows
	// created under it are shared by all anonymous clients.
	AnonymousUserID = "anonymous"
)

// Scope extracts the caller identity into a model.Scope for downstream
// handlers. Identity is header-based; there is no credential check here.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			userID = AnonymousUserID
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Scope(), or the anonymous
// scope when the middleware did not run.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: AnonymousUserID}
}
