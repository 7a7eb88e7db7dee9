package http

import (
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Admin(w http.ResponseWriter, r *http.Request)
	Manager(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Admin implements DashboardHandler.
func (d *DashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	overview, err := d.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		slog.Error("Admin dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// Manager implements DashboardHandler.
func (d *DashboardHandlerImpl) Manager(w http.ResponseWriter, r *http.Request) {
	overview, err := d.dashboardService.GetManagerDashboard(r.Context())
	if err != nil {
		slog.Error("Manager dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
