package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/repository/memory"
	"github.com/attendly/attendance-backend-go/internal/repository/sessionstore"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/attendly/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/attendly/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	leaveService "github.com/attendly/attendance-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	sessionStore, err := sessionstore.New(cfg.Session.DBPath)
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}
	defer sessionStore.Close()

	employeeRepo := memory.NewEmployeeRepository(fixtures.DefaultRoster())
	attendanceRepo := memory.NewAttendanceRepository()
	leaveRepo := memory.NewLeaveRepository(fixtures.DefaultLeaveApplications()...)

	systemClock := clock.System{}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(employeeRepo, sessionStore, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc, err := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, systemClock, cfg.Attendance.LateAfter)
	if err != nil {
		log.Fatal("Failed to initialize attendance service:", err)
	}
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, systemClock)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRepo, systemClock)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
