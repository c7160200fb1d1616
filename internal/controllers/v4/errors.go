package v4

import (
	"context"
	"errors"
	"net/http"

	"github.com/twigs-app/backend/internal/auth"
	"github.com/twigs-app/backend/internal/models"
	"github.com/twigs-app/backend/internal/overview"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	// Overview errors wrap the underlying database error, which may be ErrGeneral
	case errors.Is(err, overview.ErrUnavailable), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable

	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, overview.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errUserPasswordMissing = errors.New("the current password is needed to change the password")
	errUserPasswordWrong   = errors.New("the current password is not correct")
	errDateRangeInvalid    = errors.New("the from date must be before the until date")
)
