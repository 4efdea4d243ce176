package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/moneywise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Cashflow errors
var (
	errCashflowDateMissing = errors.New("the date of the transaction must be set")
	errAmountNegative      = errors.New("the amount must not be negative")
)

var errPageInvalid = errors.New("the page query parameter must be a positive number")
