package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, clk clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		clock:              clk,
	}
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

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	employeeID, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	today := truncateToDay(s.clock.Now())
	if err := req.Validate(today); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	application := leave.LeaveApplication{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Type:        leave.LeaveType(req.Type),
		StartDate:   start,
		EndDate:     end,
		Days:        leave.InclusiveDays(start, end),
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		AppliedDate: today,
		ApproverID:  req.ApproverID,
	}

	created, err := s.LeaveRepository.Create(ctx, application)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	actor, err := s.actingEmployee(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.LeaveRepository.GetByID(ctx, id); err != nil {
		return leave.LeaveResponse{}, err
	}

	if !actor.CanApproveLeave() {
		return leave.LeaveResponse{}, employee.ErrApproverRoleRequired
	}

	today := truncateToDay(s.clock.Now())
	updated, err := s.LeaveRepository.Finalize(ctx, id, func(l *leave.LeaveApplication) error {
		if l.Finalized() {
			return leave.ErrAlreadyFinalized
		}
		l.Status = leave.StatusApproved
		l.ApprovedDate = &today
		l.ApproverID = actor.ID
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(updated), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := s.actingEmployee(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.LeaveRepository.GetByID(ctx, id); err != nil {
		return leave.LeaveResponse{}, err
	}

	if !actor.CanApproveLeave() {
		return leave.LeaveResponse{}, employee.ErrApproverRoleRequired
	}

	updated, err := s.LeaveRepository.Finalize(ctx, id, func(l *leave.LeaveApplication) error {
		if l.Finalized() {
			return leave.ErrAlreadyFinalized
		}
		l.Status = leave.StatusRejected
		l.RejectionReason = &req.Reason
		l.ApproverID = actor.ID
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(updated), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	application, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapLeaveToResponse(application), nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context) (leave.ListLeaveResponse, error) {
	employeeID, err := actorFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	applications, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave applications: %w", err)
	}

	return mapListResponse(applications), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) (leave.ListLeaveResponse, error) {
	applications, err := s.LeaveRepository.ListPending(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list pending applications: %w", err)
	}

	return mapListResponse(applications), nil
}

func (s *LeaveServiceImpl) actingEmployee(ctx context.Context) (employee.Employee, error) {
	employeeID, err := actorFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, employeeID)
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

func mapListResponse(applications []leave.LeaveApplication) leave.ListLeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(applications))
	for _, l := range applications {
		responses = append(responses, mapLeaveToResponse(l))
	}
	return leave.ListLeaveResponse{
		TotalCount: len(responses),
		Leaves:     responses,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
