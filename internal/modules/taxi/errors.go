package taxi

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("driver not found")
	ErrDuplicateSettlement = errors.New("settlement already recorded for driver and date")
)
