package server

import (
	"net/http"
	"strings"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
	"skillswap/services/bidding/helpers"
	"skillswap/utils"

	"github.com/gin-gonic/gin"
)

// TokenValidator turns a bearer token into the actor it was issued to
type TokenValidator interface {
	Validate(token string) (models.Actor, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if actor, ok := helpers.ActorFromContext(c); ok {
		fields["actor"] = actor.UserID
	}
	utils.Info("HTTP Request", fields)
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, biddingerrors.ErrAuth, "missing bearer token")
			return
		}

		actor, err := tokens.Validate(strings.TrimSpace(token))
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, err, "invalid or expired token")
			utils.Warn("AuthMiddleware: token rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			return
		}

		helpers.SetActor(c, actor)
		c.Next()
	}
}
