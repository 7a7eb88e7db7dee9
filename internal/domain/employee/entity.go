package employee

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // Can approve leave requests
	RoleAdmin    Role = "admin"    // Full access, system dashboard
)

// Roles lists every valid role value.
var Roles = []Role{RoleEmployee, RoleManager, RoleAdmin}

func IsValidRole(r Role) bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// LeaveBalance holds the allotted days per leave type. Display-only:
// approving a leave request does not debit it.
type LeaveBalance struct {
	Annual   int `json:"annual"`
	Sick     int `json:"sick"`
	Personal int `json:"personal"`
}

type Employee struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Role         Role         `json:"role"`
	Department   string       `json:"department"`
	Position     string       `json:"position"`
	Email        string       `json:"email"`
	StartDate    string       `json:"start_date"`
	LeaveBalance LeaveBalance `json:"leave_balance"`
	TeamMembers  []string     `json:"team_members,omitempty"` // Managers only

	// Never serialized; stripped from every session and response.
	PasswordHash string `json:"-"`
}

// IsManager checks if the employee holds the manager role.
func (e *Employee) IsManager() bool {
	return e.Role == RoleManager
}

// IsAdmin checks if the employee holds the admin role.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CanApproveLeave reports whether the employee may approve or reject leave
// requests. Approval is not scoped to the manager's own team.
func (e *Employee) CanApproveLeave() bool {
	return e.Role == RoleManager || e.Role == RoleAdmin
}

// CanViewAdminDashboard reports whether the employee may view the
// system-wide dashboard.
func (e *Employee) CanViewAdminDashboard() bool {
	return e.Role == RoleAdmin
}

// Public returns a copy safe to serialize: the password hash is cleared.
func (e Employee) Public() Employee {
	e.PasswordHash = ""
	return e
}

// StartDateTime parses the employment start date.
func (e *Employee) StartDateTime() (time.Time, error) {
	return time.Parse("2006-01-02", e.StartDate)
}
