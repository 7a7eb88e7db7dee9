package dashboard

import "github.com/attendly/attendance-backend-go/internal/domain/leave"

// DepartmentPresence is today's headcount breakdown for one department.
type DepartmentPresence struct {
	Name           string  `json:"name"`
	Employees      int     `json:"employees"`
	Present        int     `json:"present"`
	AttendanceRate float64 `json:"attendance_rate"` // percent, 0-100
}

type AdminDashboardResponse struct {
	TotalEmployees    int                  `json:"total_employees"`
	PresentToday      int                  `json:"present_today"`
	LateToday         int                  `json:"late_today"`
	OnLeaveToday      int                  `json:"on_leave_today"`
	PendingLeaveCount int                  `json:"pending_leave_count"`
	Departments       []DepartmentPresence `json:"departments"`
}

// TeamMemberStatus is one team member's standing for today.
type TeamMemberStatus struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Status     string  `json:"status"` // present, late, on_leave, absent
	CheckIn    *string `json:"check_in,omitempty"`
}

type ManagerDashboardResponse struct {
	Team          []TeamMemberStatus `json:"team"`
	PendingLeaves []leave.LeaveResponse `json:"pending_leaves"`
}
