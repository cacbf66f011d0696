package http

import (
	"errors"
	"net/http"

	"inkwell/internal/entity"

	"github.com/gin-gonic/gin"
)

// statusForError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a collaborator failure and reads as 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

// actorFrom rebuilds the authenticated actor placed in the context by the
// auth middleware.
func actorFrom(c *gin.Context) entity.Actor {
	return entity.Actor{
		ID:   c.GetString("user_id"),
		Role: entity.UserRole(c.GetString("role")),
	}
}
