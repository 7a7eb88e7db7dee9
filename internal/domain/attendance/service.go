package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's attendance record for the authenticated employee
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's open record; fails when nothing is open
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves records for the authenticated employee,
	// insertion order
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records with filters (admin/manager)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetMySummary aggregates the authenticated employee's records by
	// status over a week or month
	GetMySummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
