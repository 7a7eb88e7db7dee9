package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrNoOpenRecord       = errors.New("no open attendance record to check out of")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
