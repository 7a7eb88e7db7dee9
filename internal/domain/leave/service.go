package leave

import "context"

// LeaveService defines business logic for the leave application lifecycle
type LeaveService interface {
	// Apply submits a new leave application for the authenticated
	// employee; it starts out pending
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	// Approve transitions a pending application to approved. Only
	// managers and admins may approve; finalized applications stay as
	// they are.
	Approve(ctx context.Context, id string) (LeaveResponse, error)

	// Reject transitions a pending application to rejected, recording
	// the rejection reason. Same authorization rule as Approve.
	Reject(ctx context.Context, id string, req RejectLeaveRequest) (LeaveResponse, error)

	// Get retrieves a single application by id
	Get(ctx context.Context, id string) (LeaveResponse, error)

	// GetMyLeaves retrieves the authenticated employee's applications
	GetMyLeaves(ctx context.Context) (ListLeaveResponse, error)

	// ListPending retrieves every pending application (manager/admin
	// review views)
	ListPending(ctx context.Context) (ListLeaveResponse, error)
}
