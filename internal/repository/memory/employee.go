// Package memory provides the in-memory repository implementations. All
// ledger state lives here; the only state persisted elsewhere is the
// current-user session record.
package memory

import (
	"context"
	"sync"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]employee.Employee
}

// NewEmployeeRepository builds the read-only roster from the provisioned
// employee records.
func NewEmployeeRepository(roster []employee.Employee) *EmployeeRepository {
	r := &EmployeeRepository{
		byID: make(map[string]employee.Employee, len(roster)),
	}
	for _, emp := range roster {
		if _, exists := r.byID[emp.ID]; exists {
			continue
		}
		r.order = append(r.order, emp.ID)
		r.byID[emp.ID] = emp
	}
	return r
}

// GetByID implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]employee.Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}

// ListByIDs implements employee.EmployeeRepository.
func (r *EmployeeRepository) ListByIDs(_ context.Context, ids []string) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		if emp, ok := r.byID[id]; ok {
			result = append(result, emp)
		}
	}
	return result, nil
}
