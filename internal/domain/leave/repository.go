package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access for leave applications.
type LeaveRepository interface {
	// Create appends a new application
	Create(ctx context.Context, l LeaveApplication) (LeaveApplication, error)

	// GetByID retrieves an application by id
	GetByID(ctx context.Context, id string) (LeaveApplication, error)

	// ListByEmployee returns the employee's applications, insertion order
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveApplication, error)

	// ListPending returns every pending application, insertion order
	ListPending(ctx context.Context) ([]LeaveApplication, error)

	// ListApprovedOn returns approved applications whose date range
	// covers the given date
	ListApprovedOn(ctx context.Context, date time.Time) ([]LeaveApplication, error)

	// Finalize runs fn on the stored application under the store's write
	// lock, so concurrent approve/reject attempts on the same id yield
	// exactly one winner. fn may mutate the record or return an error to
	// abort; the stored record is only replaced when fn succeeds.
	Finalize(ctx context.Context, id string, fn func(*LeaveApplication) error) (LeaveApplication, error)
}
