package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
