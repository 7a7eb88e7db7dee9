package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRepository
	clock clock.Clock
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		LeaveRepository:      leaveRepo,
		clock:                clk,
	}
}

// GetAdminDashboard implements dashboard.DashboardService.
func (d *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	today := truncateToDay(d.clock.Now())

	employees, err := d.EmployeeRepository.List(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	todayRecords, err := d.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	onLeave, err := d.LeaveRepository.ListApprovedOn(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list approved leave: %w", err)
	}

	pending, err := d.LeaveRepository.ListPending(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list pending leave: %w", err)
	}

	checkedIn := make(map[string]attendance.Attendance, len(todayRecords))
	resp := dashboard.AdminDashboardResponse{
		TotalEmployees:    len(employees),
		OnLeaveToday:      len(onLeave),
		PendingLeaveCount: len(pending),
	}
	for _, rec := range todayRecords {
		checkedIn[rec.EmployeeID] = rec
		switch rec.Status {
		case attendance.StatusPresent:
			resp.PresentToday++
		case attendance.StatusLate:
			resp.LateToday++
		}
	}

	// Department breakdown preserves roster order.
	var order []string
	byDept := make(map[string]*dashboard.DepartmentPresence)
	for _, emp := range employees {
		dept, ok := byDept[emp.Department]
		if !ok {
			dept = &dashboard.DepartmentPresence{Name: emp.Department}
			byDept[emp.Department] = dept
			order = append(order, emp.Department)
		}
		dept.Employees++
		if _, in := checkedIn[emp.ID]; in {
			dept.Present++
		}
	}
	for _, name := range order {
		dept := byDept[name]
		if dept.Employees > 0 {
			dept.AttendanceRate = math.Round(float64(dept.Present) / float64(dept.Employees) * 100)
		}
		resp.Departments = append(resp.Departments, *dept)
	}

	return resp, nil
}

// GetManagerDashboard implements dashboard.DashboardService.
func (d *DashboardServiceImpl) GetManagerDashboard(ctx context.Context) (dashboard.ManagerDashboardResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	managerID, ok := claims["employee_id"].(string)
	if !ok || managerID == "" {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	manager, err := d.EmployeeRepository.GetByID(ctx, managerID)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, err
	}

	today := truncateToDay(d.clock.Now())

	team, err := d.EmployeeRepository.ListByIDs(ctx, manager.TeamMembers)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to list team members: %w", err)
	}

	todayRecords, err := d.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	checkedIn := make(map[string]attendance.Attendance, len(todayRecords))
	for _, rec := range todayRecords {
		checkedIn[rec.EmployeeID] = rec
	}

	onLeave, err := d.LeaveRepository.ListApprovedOn(ctx, today)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to list approved leave: %w", err)
	}
	onLeaveSet := make(map[string]bool, len(onLeave))
	for _, l := range onLeave {
		onLeaveSet[l.EmployeeID] = true
	}

	resp := dashboard.ManagerDashboardResponse{
		Team:          make([]dashboard.TeamMemberStatus, 0, len(team)),
		PendingLeaves: []leave.LeaveResponse{},
	}
	for _, member := range team {
		status := dashboard.TeamMemberStatus{
			EmployeeID: member.ID,
			Name:       member.Name,
			Department: member.Department,
			Status:     "absent",
		}
		if onLeaveSet[member.ID] {
			status.Status = "on_leave"
		} else if rec, in := checkedIn[member.ID]; in {
			status.Status = string(rec.Status)
			if rec.CheckIn != nil {
				formatted := rec.CheckIn.Format("15:04")
				status.CheckIn = &formatted
			}
		}
		resp.Team = append(resp.Team, status)
	}

	pending, err := d.LeaveRepository.ListPending(ctx)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to list pending leave: %w", err)
	}
	for _, l := range pending {
		resp.PendingLeaves = append(resp.PendingLeaves, mapLeaveToResponse(l))
	}

	return resp, nil
}

func mapLeaveToResponse(l leave.LeaveApplication) leave.LeaveResponse {
	var approvedDate *string
	if l.ApprovedDate != nil {
		formatted := l.ApprovedDate.Format("2006-01-02")
		approvedDate = &formatted
	}

	return leave.LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		Type:            string(l.Type),
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		Days:            l.Days,
		Reason:          l.Reason,
		Status:          string(l.Status),
		AppliedDate:     l.AppliedDate.Format("2006-01-02"),
		ApproverID:      l.ApproverID,
		ApprovedDate:    approvedDate,
		RejectionReason: l.RejectionReason,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
