package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidTimestamp = errors.New("invalid or unparseable timestamp")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrRecordNotFound   = errors.New("attendance record not found")

	// ErrAttendanceAlreadyRegistered covers both a duplicate record for the
	// day and an attempt to overwrite an entry/exit slot that is already set.
	ErrAttendanceAlreadyRegistered = errors.New("attendance already registered")
)
