package tour

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("tour not found")
)
