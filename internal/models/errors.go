package models

import "errors"

// Date validation errors
var (
	// ErrDateFormat indicates the value is not shaped like DD/MM/YY
	ErrDateFormat = errors.New("date must be in DD/MM/YY format")

	// ErrDateIncomplete indicates some but not all date parts are filled in
	ErrDateIncomplete = errors.New("date is incomplete")

	// ErrInvalidMonth indicates a month outside 1-12
	ErrInvalidMonth = errors.New("month must be between 01 and 12")

	// ErrInvalidDay indicates a day outside the month's range
	ErrInvalidDay = errors.New("day is out of range for the month")
)
