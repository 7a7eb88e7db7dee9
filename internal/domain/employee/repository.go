package employee

import "context"

// EmployeeRepository defines read access to the provisioned roster.
// Employee records are shared read-only; the ledgers reference them by id.
type EmployeeRepository interface {
	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves every employee, in provisioning order
	List(ctx context.Context) ([]Employee, error)

	// ListByIDs retrieves the given employees, skipping unknown ids.
	// Used to resolve a manager's team roster.
	ListByIDs(ctx context.Context, ids []string) ([]Employee, error)
}
