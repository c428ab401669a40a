package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/adapters/handler/http/middleware"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/services"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

var badRequestErrors = []error{
	domain.ErrInvalidUsername,
	domain.ErrPasswordTooShort,
	domain.ErrPasswordMismatch,
	domain.ErrHabitNameEmpty,
	domain.ErrHabitNameTooLong,
	domain.ErrHabitInvalidUserID,
	domain.ErrInvalidEntry,
	domain.ErrInvalidMood,
	domain.ErrJournalEmpty,
	domain.ErrJournalTooLong,
	domain.ErrEntryInFuture,
	domain.ErrEntryBeforeStart,
	services.ErrInvalidHistoryFilter,
}

var conflictErrors = []error{
	domain.ErrUsernameTaken,
	domain.ErrHabitNameTaken,
	domain.ErrEntryAlreadyLogged,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// handleError maps domain errors to HTTP responses. Anything unrecognized is
// attached to the context for the request logger and answered with a generic 500.
func handleError(c *gin.Context, err error) {
	switch {
	case isAny(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, errorResponse{Error: "unauthorized access"})

	case errors.Is(err, domain.ErrHabitNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})

	case errors.Is(err, domain.ErrHabitConflict), errors.Is(err, domain.ErrEntryConflict):
		c.JSON(http.StatusConflict, errorResponse{
			Error:   "version conflict",
			Message: "data has been modified elsewhere, reload and retry",
		})

	case isAny(err, conflictErrors):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})

	default:
		if errors.Is(err, streak.ErrInvalidEntryDate) {
			err = fmt.Errorf("data integrity: %w", err)
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "user context missing"})
		return "", false
	}
	return userID, true
}
