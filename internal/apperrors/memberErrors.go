package apperrors

import "errors"

var (
	ErrNameRequired = errors.New("member name is required")
	ErrInvalidID    = errors.New("id must be numeric")
)
