package apperrors

import "errors"

var (
	ErrHolidayFetch = errors.New("failed to fetch holidays from upstream")
)
