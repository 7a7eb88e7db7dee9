package employee

import "context"

// EmployeeService exposes the roster to the API surface
type EmployeeService interface {
	// GetMyProfile returns the authenticated employee's own record
	GetMyProfile(ctx context.Context) (Employee, error)

	// List returns every employee record (admin views)
	List(ctx context.Context) ([]Employee, error)
}
