package apperrors

import "errors"

var (
	ErrRotationNotSet  = errors.New("rotation has not been saved yet")
	ErrInvalidRotation = errors.New("rotation payload must be a JSON object")
)
