// Package fixtures provides the demo roster and seed data loaded at
// startup. Provisioning real employees is outside this service; the
// roster stands in for it.
package fixtures

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"golang.org/x/crypto/bcrypt"
)

// DefaultRoster returns the provisioned employees. Passwords are hashed
// at load time; the plaintext values exist only for the demo login.
func DefaultRoster() []employee.Employee {
	return []employee.Employee{
		{
			ID:           "EMP001",
			Name:         "Sarah Johnson",
			Role:         employee.RoleEmployee,
			Department:   "Engineering",
			Position:     "Senior Developer",
			Email:        "sarah.johnson@company.com",
			StartDate:    "2022-01-15",
			LeaveBalance: employee.LeaveBalance{Annual: 15, Sick: 8, Personal: 3},
			PasswordHash: mustHash("password123"),
		},
		{
			ID:           "EMP002",
			Name:         "Michael Chen",
			Role:         employee.RoleManager,
			Department:   "Engineering",
			Position:     "Engineering Manager",
			Email:        "michael.chen@company.com",
			StartDate:    "2020-03-20",
			LeaveBalance: employee.LeaveBalance{Annual: 20, Sick: 10, Personal: 5},
			TeamMembers:  []string{"EMP001", "EMP003", "EMP004"},
			PasswordHash: mustHash("manager123"),
		},
		{
			ID:           "EMP003",
			Name:         "Emily Rodriguez",
			Role:         employee.RoleEmployee,
			Department:   "Engineering",
			Position:     "Developer",
			Email:        "emily.rodriguez@company.com",
			StartDate:    "2023-02-01",
			LeaveBalance: employee.LeaveBalance{Annual: 12, Sick: 8, Personal: 3},
			PasswordHash: mustHash("password123"),
		},
		{
			ID:           "EMP004",
			Name:         "James Park",
			Role:         employee.RoleEmployee,
			Department:   "Engineering",
			Position:     "QA Engineer",
			Email:        "james.park@company.com",
			StartDate:    "2023-06-12",
			LeaveBalance: employee.LeaveBalance{Annual: 12, Sick: 8, Personal: 3},
			PasswordHash: mustHash("password123"),
		},
		{
			ID:           "ADMIN001",
			Name:         "David Wilson",
			Role:         employee.RoleAdmin,
			Department:   "HR",
			Position:     "HR Director",
			Email:        "david.wilson@company.com",
			StartDate:    "2019-09-10",
			LeaveBalance: employee.LeaveBalance{Annual: 25, Sick: 15, Personal: 8},
			PasswordHash: mustHash("admin123"),
		},
	}
}

// DefaultLeaveApplications returns the seeded leave ledger: one pending
// request awaiting review and one already approved.
func DefaultLeaveApplications() []leave.LeaveApplication {
	approvedAt := date("2024-08-12")
	return []leave.LeaveApplication{
		{
			ID:          "LA001",
			EmployeeID:  "EMP001",
			Type:        leave.TypeAnnual,
			StartDate:   date("2024-08-20"),
			EndDate:     date("2024-08-22"),
			Days:        3,
			Reason:      "Family vacation",
			Status:      leave.StatusPending,
			AppliedDate: date("2024-08-10"),
			ApproverID:  "EMP002",
		},
		{
			ID:           "LA002",
			EmployeeID:   "EMP003",
			Type:         leave.TypeSick,
			StartDate:    date("2024-08-13"),
			EndDate:      date("2024-08-13"),
			Days:         1,
			Reason:       "Medical appointment",
			Status:       leave.StatusApproved,
			AppliedDate:  date("2024-08-12"),
			ApproverID:   "EMP002",
			ApprovedDate: &approvedAt,
		},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
