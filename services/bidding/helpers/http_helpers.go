package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
	"skillswap/internal/validation"
	"skillswap/utils"

	"github.com/gin-gonic/gin"
)

const actorKey = "skillswap.actor"

// HandleBindError sends a standardized JSON error for binding failures.
// Field-level failures are spelled out so clients can show them as-is.
func HandleBindError(c *gin.Context, handlerName string, err error) {
	message := "invalid request payload"
	if detail, ok := validation.Explain(err); ok {
		message = detail
	}
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, message)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrProjectNotFound):
		return http.StatusNotFound, "project not found"
	case errors.Is(err, biddingerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, biddingerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, biddingerrors.ErrAuth):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, biddingerrors.ErrNotPermitted):
		return http.StatusForbidden, "you are not allowed to do that"
	case errors.Is(err, biddingerrors.ErrProjectNotOpen):
		return http.StatusConflict, "project is no longer accepting bids"
	case errors.Is(err, biddingerrors.ErrDuplicateBid):
		return http.StatusConflict, "you have already bid on this project"
	case errors.Is(err, biddingerrors.ErrRevisionConflict):
		return http.StatusConflict, "bid was changed by someone else, please refresh"
	case errors.Is(err, biddingerrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid bid status transition"
	case errors.Is(err, biddingerrors.ErrNoBids):
		return http.StatusOK, "no bids found for project"
	case errors.Is(err, biddingerrors.ErrFreelancerNoBids):
		return http.StatusOK, "no bids found for freelancer"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// SetActor stores the authenticated actor on the request context
func SetActor(c *gin.Context, actor models.Actor) {
	c.Set(actorKey, actor)
}

// ActorFromContext returns the actor set by the auth middleware
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}
