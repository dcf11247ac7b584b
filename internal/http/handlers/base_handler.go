// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ldecaneva/NomadDay/internal/session"
	"github.com/ldecaneva/NomadDay/internal/trip"
)

// SessionStore is the slice of the session store the handlers use.
type SessionStore interface {
	Create(ctx context.Context, state session.State) (string, error)
	Get(ctx context.Context, id string) (session.State, error)
	Replace(ctx context.Context, id string, state session.State) error
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrMissingDestination),
		errors.Is(err, trip.ErrMissingDuration),
		errors.Is(err, trip.ErrMissingTripType),
		errors.Is(err, trip.ErrMissingMessage),
		errors.Is(err, trip.ErrMissingSchedule):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrUpstream):
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, session.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
