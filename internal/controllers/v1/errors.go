package v1

import (
	"errors"
	"net/http"

	"github.com/fluxo-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrCashRegisterAlreadyClosed) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
