package auth

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

// SessionRepository persists the single current-user record: written on
// login, removed on logout, read once at startup to restore a session.
// The stored shape is the employee record with the password hash omitted.
type SessionRepository interface {
	Set(ctx context.Context, emp employee.Employee) error
	Get(ctx context.Context) (*employee.Employee, error)
	Clear(ctx context.Context) error
}
