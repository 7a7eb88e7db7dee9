package memory

import (
	"context"
	"sync"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

// SessionRepository keeps the current-user record in memory. Used in
// tests; the API binary persists sessions through the sessionstore
// package instead.
type SessionRepository struct {
	mu      sync.RWMutex
	current *employee.Employee
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Set implements auth.SessionRepository.
func (r *SessionRepository) Set(_ context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	public := emp.Public()
	r.current = &public
	return nil
}

// Get implements auth.SessionRepository.
func (r *SessionRepository) Get(_ context.Context) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil, nil
	}
	copied := *r.current
	return &copied, nil
}

// Clear implements auth.SessionRepository.
func (r *SessionRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
	return nil
}
