package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// The store is append-mostly: records are created on check-in and stamped
// exactly once on check-out; there is no delete. Both mutations carry
// their precondition check into the store so that at most one open record
// (check-in set, check-out unset) exists per employee per date, even
// under concurrent callers.
type AttendanceRepository interface {
	// CreateIfNoOpen appends a new attendance record unless an open
	// record already exists for the same employee and date, in which
	// case it returns ErrAlreadyCheckedIn. The check and the append
	// run under one write lock.
	CreateIfNoOpen(ctx context.Context, att Attendance) (Attendance, error)

	// CloseOpen locates the open record for the employee on the given
	// date, stamps its check-out time, and returns the closed record.
	// Returns ErrNoOpenRecord when nothing is open. Locate and stamp
	// run under one write lock.
	CloseOpen(ctx context.Context, employeeID string, date, checkOut time.Time) (Attendance, error)

	// List returns records matching the filter, insertion order
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// ListByDate returns all records dated on the given calendar date
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
