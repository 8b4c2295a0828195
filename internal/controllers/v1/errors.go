package v1

import (
	"errors"
	"net/http"

	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/models"
)

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrUnavailable):
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

var (
	errAmountParameter = errors.New("the amount query parameter must be set to a decimal number")
)
