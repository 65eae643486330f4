package reservation

import "errors"

var (
	ErrValidation           = errors.New("validation error")
	ErrInvalidDateRange     = errors.New("end date must be after start date")
	ErrVehicleUnavailable   = errors.New("vehicle not available for the requested dates")
	ErrTourCapacityExceeded = errors.New("tour capacity exceeded for that date")
	ErrInvalidTransition    = errors.New("invalid reservation status transition")
	ErrNotFound             = errors.New("not found")
)
