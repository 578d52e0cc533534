package v1

import (
	"errors"
	"net/http"

	"github.com/finora/backend/internal/auth"
	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/internal/receipt"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case auth.IsUnauthorized(err):
		return http.StatusUnauthorized
	case errors.Is(err, receipt.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, receipt.ErrScanFailed):
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery  = errors.New("the month query parameter must be set")
	errRangeNotSetInQuery  = errors.New("the fromDate and untilDate query parameters must be set")
	errMonthsNotSetInQuery = errors.New("the fromMonth and untilMonth query parameters must be set")
	errTypeInvalid         = errors.New("the type must be 'income' or 'expense'")
	errSortInvalid         = errors.New("sort must be one of 'createdAt', 'updatedAt', 'date' or 'amount'")
	errOrderInvalid        = errors.New("order must be 'asc' or 'desc'")
)

// Auth errors
var (
	errEmailInvalid    = errors.New("the email address is not valid")
	errCurrencyInvalid = errors.New("the currency is not supported")
	errCountryInvalid  = errors.New("the country code must be an ISO 3166-1 alpha-2 code")
)

// Receipt errors
var (
	errNoFilePost = errors.New("you must send a file to this endpoint")
)
