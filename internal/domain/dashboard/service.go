package dashboard

import "context"

// DashboardService derives role-specific overviews from the ledgers.
// Everything here is read-side aggregation; no state is stored.
type DashboardService interface {
	// GetAdminDashboard returns system-wide presence and leave figures
	GetAdminDashboard(ctx context.Context) (AdminDashboardResponse, error)

	// GetManagerDashboard returns the authenticated manager's team
	// status for today plus the pending leave queue
	GetManagerDashboard(ctx context.Context) (ManagerDashboardResponse, error)
}
