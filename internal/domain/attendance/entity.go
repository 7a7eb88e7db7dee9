package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
)

// Attendance is one check-in/check-out record for an employee on a
// calendar date. Records are created on check-in, mutated exactly once on
// check-out and never deleted.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar date, truncated to midnight
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	Location   string
	CreatedAt  time.Time
}

// Open reports whether the record has a check-in but no check-out yet.
func (a *Attendance) Open() bool {
	return a.CheckIn != nil && a.CheckOut == nil
}
