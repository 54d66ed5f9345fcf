package httpserver

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ventas-dashboard/internal/backend"
	"ventas-dashboard/internal/domain"
)

type ctxKey string

const userCtxKey ctxKey = "user"

// bearerMiddleware requires a bearer token and forwards it to the inventory
// API through the request context.
func bearerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("missing bearer token"))
			return
		}
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

// ownerMiddleware resolves the signed-in account; cart drafts are scoped to it.
func ownerMiddleware(auth authService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := backend.TokenFrom(c.Request.Context())
		u, err := auth.LookupByToken(c.Request.Context(), token)
		if err != nil {
			writeError(c, logger, err)
			c.Abort()
			return
		}
		ctx := context.WithValue(c.Request.Context(), userCtxKey, u)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	u, _ := c.Request.Context().Value(userCtxKey).(*domain.User)
	return u
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
