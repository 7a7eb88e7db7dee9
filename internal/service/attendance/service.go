package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/attendly/attendance-backend-go/internal/pkg/period"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock     clock.Clock
	lateAfter time.Time // time-of-day threshold, date part unused
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	lateAfter string,
) (attendance.AttendanceService, error) {
	threshold, err := time.Parse("15:04", lateAfter)
	if err != nil {
		return nil, fmt.Errorf("invalid late threshold %q: %w", lateAfter, err)
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
		lateAfter:            threshold,
	}, nil
}

func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := truncateToDay(now)

	status := attendance.StatusPresent
	if afterThreshold(now, a.lateAfter) {
		status = attendance.StatusLate
	}

	location := req.Location
	if location == "" {
		location = attendance.DefaultLocation
	}

	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &now,
		Status:     status,
		Location:   location,
		CreatedAt:  now,
	}

	// The open-record check lives in the repository so the decision and
	// the append happen under one lock; concurrent check-ins for the
	// same employee and date admit exactly one record.
	created, err := a.AttendanceRepository.CreateIfNoOpen(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. Checking out without
// an open record is an error, not a no-op.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := truncateToDay(now)

	closed, err := a.AttendanceRepository.CloseOpen(ctx, employeeID, today, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(closed), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	employeeID, err := actorFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.AttendanceRepository.List(ctx, attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Status:     filter.Status,
	})
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return mapListResponse(records), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return mapListResponse(records), nil
}

// GetMySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMySummary(ctx context.Context, req attendance.SummaryRequest) (attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	employeeID, err := actorFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	reference := truncateToDay(a.clock.Now())
	if req.Date != nil {
		reference, _ = time.Parse("2006-01-02", *req.Date)
	}

	var start, end time.Time
	switch req.Period {
	case attendance.PeriodWeek:
		start, end = period.WeekRange(reference)
	case attendance.PeriodMonth:
		start, end = period.MonthRange(reference)
	}

	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")
	records, err := a.AttendanceRepository.List(ctx, attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		StartDate:  &startStr,
		EndDate:    &endStr,
	})
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := attendance.SummaryResponse{
		Period:    req.Period,
		StartDate: startStr,
		EndDate:   endStr,
		Total:     len(records),
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusLate:
			summary.Late++
		}
	}

	return summary, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		CheckIn:    timePtrToString(att.CheckIn),
		CheckOut:   timePtrToString(att.CheckOut),
		Status:     string(att.Status),
		Location:   att.Location,
	}
}

func mapListResponse(records []attendance.Attendance) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapAttendanceToResponse(rec))
	}
	return attendance.ListAttendanceResponse{
		TotalCount:  len(responses),
		Attendances: responses,
	}
}

// timePtrToString safely converts a *time.Time to a "HH:MM" string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04")
	return &formatted
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func afterThreshold(now, threshold time.Time) bool {
	minutes := now.Hour()*60 + now.Minute()
	limit := threshold.Hour()*60 + threshold.Minute()
	return minutes > limit
}
