package leave

import (
	"context"
	"errors"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/fixtures"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/attendly/attendance-backend-go/internal/repository/memory"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func authContext(t *testing.T, employeeID string, role employee.Role) context.Context {
	t.Helper()
	tok, _, err := testAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func newTestService(t *testing.T) leave.LeaveService {
	t.Helper()
	leaveRepo := memory.NewLeaveRepository(fixtures.DefaultLeaveApplications()...)
	employeeRepo := memory.NewEmployeeRepository(fixtures.DefaultRoster())
	return NewLeaveService(leaveRepo, employeeRepo, clock.At("2024-08-12", "10:00"))
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP001", employee.RoleEmployee)

	resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		Type:      "annual",
		StartDate: "2024-08-20",
		EndDate:   "2024-08-22",
		Reason:    "Family vacation trip",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "2024-08-12", resp.AppliedDate)
}

func TestApplySingleDayCountsOne(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP001", employee.RoleEmployee)

	resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		Type:      "sick",
		StartDate: "2024-08-15",
		EndDate:   "2024-08-15",
		Reason:    "Medical appointment downtown",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestApplyValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP001", employee.RoleEmployee)

	tests := []struct {
		name  string
		req   leave.ApplyLeaveRequest
		field string
	}{
		{
			name:  "reason too short",
			req:   leave.ApplyLeaveRequest{Type: "annual", StartDate: "2024-08-20", EndDate: "2024-08-22", Reason: "short"},
			field: "reason",
		},
		{
			name:  "end before start",
			req:   leave.ApplyLeaveRequest{Type: "annual", StartDate: "2024-08-22", EndDate: "2024-08-20", Reason: "Family vacation trip"},
			field: "end_date",
		},
		{
			name:  "start in the past",
			req:   leave.ApplyLeaveRequest{Type: "annual", StartDate: "2024-08-01", EndDate: "2024-08-22", Reason: "Family vacation trip"},
			field: "start_date",
		},
		{
			name:  "unknown type",
			req:   leave.ApplyLeaveRequest{Type: "sabbatical", StartDate: "2024-08-20", EndDate: "2024-08-22", Reason: "Family vacation trip"},
			field: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(ctx, tt.req)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.True(t, verrs.HasField(tt.field))
		})
	}
}

func TestApplyCollectsAllFieldErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP001", employee.RoleEmployee)

	_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.HasField("type"))
	assert.True(t, verrs.HasField("start_date"))
	assert.True(t, verrs.HasField("end_date"))
	assert.True(t, verrs.HasField("reason"))
}

func TestApproveByManager(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP002", employee.RoleManager)

	resp, err := svc.Approve(ctx, "LA001")
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "EMP002", resp.ApproverID)
	require.NotNil(t, resp.ApprovedDate)
	assert.Equal(t, "2024-08-12", *resp.ApprovedDate)
}

func TestApproveRequiresApproverRole(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP001", employee.RoleEmployee)

	_, err := svc.Approve(ctx, "LA001")
	assert.ErrorIs(t, err, employee.ErrApproverRoleRequired)
}

func TestApproveUnknownApplication(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP002", employee.RoleManager)

	_, err := svc.Approve(ctx, "LA999")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestFinalizedApplicationIsImmutable(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP002", employee.RoleManager)

	_, err := svc.Approve(ctx, "LA001")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, "LA001")
	assert.ErrorIs(t, err, leave.ErrAlreadyFinalized)

	_, err = svc.Reject(ctx, "LA001", leave.RejectLeaveRequest{Reason: "too late"})
	assert.ErrorIs(t, err, leave.ErrAlreadyFinalized)
}

func TestRejectByAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "ADMIN001", employee.RoleAdmin)

	resp, err := svc.Reject(ctx, "LA001", leave.RejectLeaveRequest{Reason: "team is short-staffed that week"})
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, "ADMIN001", resp.ApproverID)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "team is short-staffed that week", *resp.RejectionReason)
}

func TestRejectRequiresReason(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP002", employee.RoleManager)

	_, err := svc.Reject(ctx, "LA001", leave.RejectLeaveRequest{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.HasField("reason"))
}

func TestConcurrentFinalizeHasOneWinner(t *testing.T) {
	svc := newTestService(t)
	managerCtx := authContext(t, "EMP002", employee.RoleManager)
	adminCtx := authContext(t, "ADMIN001", employee.RoleAdmin)

	results := make(chan error, 2)
	go func() {
		_, err := svc.Approve(managerCtx, "LA001")
		results <- err
	}()
	go func() {
		_, err := svc.Reject(adminCtx, "LA001", leave.RejectLeaveRequest{Reason: "coverage conflict"})
		results <- err
	}()

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			failures++
			assert.ErrorIs(t, err, leave.ErrAlreadyFinalized)
		}
	}
	assert.Equal(t, 1, failures)

	resp, err := svc.Get(context.Background(), "LA001")
	require.NoError(t, err)
	assert.Contains(t, []string{"approved", "rejected"}, resp.Status)
}

func TestGetMyLeaves(t *testing.T) {
	svc := newTestService(t)
	ctx := authContext(t, "EMP001", employee.RoleEmployee)

	resp, err := svc.GetMyLeaves(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "LA001", resp.Leaves[0].ID)
}

func TestListPending(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.ListPending(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "pending", resp.Leaves[0].Status)
}

func TestApplyWithoutIdentityFails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
		Type:      "annual",
		StartDate: "2024-08-20",
		EndDate:   "2024-08-22",
		Reason:    "Family vacation trip",
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, leave.ErrLeaveNotFound))
}
