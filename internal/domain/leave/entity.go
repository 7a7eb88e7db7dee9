package leave

import "time"

type LeaveType string

const (
	TypeAnnual   LeaveType = "annual"
	TypeSick     LeaveType = "sick"
	TypePersonal LeaveType = "personal"
)

// Types lists every valid leave type value.
var Types = []LeaveType{TypeAnnual, TypeSick, TypePersonal}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveApplication is one leave request and its lifecycle:
// pending --approve--> approved (terminal)
// pending --reject--> rejected (terminal)
type LeaveApplication struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Days       int // derived, inclusive of both endpoints
	Reason     string

	Status      Status
	AppliedDate time.Time
	ApproverID  string

	ApprovedDate    *time.Time
	RejectionReason *string
}

// Finalized reports whether the application is in a terminal state.
func (l *LeaveApplication) Finalized() bool {
	return l.Status == StatusApproved || l.Status == StatusRejected
}

// Covers reports whether the approved range includes the given date.
func (l *LeaveApplication) Covers(date time.Time) bool {
	return !date.Before(l.StartDate) && !date.After(l.EndDate)
}

// InclusiveDays counts whole days from start to end including both
// endpoints, clamped to zero for inverted ranges.
func InclusiveDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}
