package fleet

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("vehicle not found")
	ErrHasReservations = errors.New("vehicle has non-terminal reservations")
)
