package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn  = errors.New("employee has already checked in for this date")
	ErrNotCheckedIn      = errors.New("employee has not checked in for this date")
	ErrAlreadyCheckedOut = errors.New("employee has already checked out for this date")

	ErrInvalidStatus = errors.New("status must be one of present, absent, late, half-day, leave")
)
