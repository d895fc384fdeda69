package http

import (
	"errors"
	"net/http"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/pkg/datemath"
)

var errInvalidQueryDate = errors.New("from/to must be YYYY-MM-DD")

// mapError translates use-case errors into an HTTP status.
func mapError(err error) int {
	switch {
	case errors.Is(err, leave.ErrInvertedRange),
		errors.Is(err, leave.ErrEmptyText),
		errors.Is(err, datemath.ErrInvalidDate),
		errors.Is(err, errInvalidQueryDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
