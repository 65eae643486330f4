package expense

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("expense not found")
)
