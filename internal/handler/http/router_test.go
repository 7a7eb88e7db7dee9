package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/fixtures"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/repository/memory"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/attendly/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	leaveService "github.com/attendly/attendance-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	routerTestSecret     = "test-secret-key-for-jwt"
	routerTestAccessExp  = "1h"
	routerTestRefreshExp = "24h"
)

// newTestRouter wires the full stack against in-memory state frozen at
// 2024-08-12 09:00.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	clk := clock.At("2024-08-12", "09:00")
	employeeRepo := memory.NewEmployeeRepository(fixtures.DefaultRoster())
	attendanceRepo := memory.NewAttendanceRepository()
	leaveRepo := memory.NewLeaveRepository(fixtures.DefaultLeaveApplications()...)

	jwtSvc := jwt.NewJWTService(routerTestSecret, routerTestAccessExp, routerTestRefreshExp)
	authSvc := authService.NewAuthService(employeeRepo, memory.NewSessionRepository(), jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc, err := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk, "09:15")
	require.NoError(t, err)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, clk)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRepo, clk)

	return NewRouter(
		RouterConfig{Env: "test", FrontendURL: "http://localhost:3000"},
		jwtSvc,
		NewAuthHandler(jwtSvc, authSvc),
		NewEmployeeHandler(employeeSvc),
		NewAttendanceHandler(attendanceSvc),
		NewLeaveHandler(leaveSvc),
		NewDashboardHandler(dashboardSvc),
	)
}

func doRequest(t *testing.T, router *chi.Mux, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *chi.Mux, employeeID, password string) auth.LoginResponse {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		EmployeeID: employeeID,
		Password:   password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool               `json:"success"`
		Data    auth.LoginResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.NotEmpty(t, envelope.Data.Tokens.AccessToken)
	return envelope.Data
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := login(t, router, "EMP001", "password123")
	assert.Equal(t, "EMP001", resp.Session.Employee.ID)
	assert.Equal(t, "Sarah Johnson", resp.Session.Employee.Name)
}

func TestLoginNeverLeaksPasswordHash(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password_hash")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginValidationError(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "employee_id")
	assert.Contains(t, rec.Body.String(), "password")
}

func TestSessionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/auth/session", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	login(t, router, "EMP002", "manager123")

	rec = doRequest(t, router, http.MethodGet, "/api/v1/auth/session", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMP002")

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/auth/session", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshEndpointRotatesTokens(t *testing.T) {
	router := newTestRouter(t)
	resp := login(t, router, "EMP001", "password123")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/refresh", "", auth.RefreshTokenRequest{
		RefreshToken: resp.Tokens.RefreshToken,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Replaying the consumed token fails.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/refresh", "", auth.RefreshTokenRequest{
		RefreshToken: resp.Tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/attendance/check-in", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshTokenCannotCallAPI(t *testing.T) {
	router := newTestRouter(t)
	resp := login(t, router, "EMP001", "password123")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/attendance/check-in", resp.Tokens.RefreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckInFlow(t *testing.T) {
	router := newTestRouter(t)
	resp := login(t, router, "EMP001", "password123")
	token := resp.Tokens.AccessToken

	rec := doRequest(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"present"`)
	assert.Contains(t, rec.Body.String(), `"check_in":"09:00"`)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/attendance/check-out", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"check_out":"09:00"`)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/attendance/check-out", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceListIsApproverOnly(t *testing.T) {
	router := newTestRouter(t)

	emp := login(t, router, "EMP001", "password123")
	rec := doRequest(t, router, http.MethodGet, "/api/v1/attendance/", emp.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	mgr := login(t, router, "EMP002", "manager123")
	rec = doRequest(t, router, http.MethodGet, "/api/v1/attendance/", mgr.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLeaveApplyAndReview(t *testing.T) {
	router := newTestRouter(t)

	emp := login(t, router, "EMP001", "password123")
	rec := doRequest(t, router, http.MethodPost, "/api/v1/leaves/", emp.Tokens.AccessToken, map[string]string{
		"type":       "annual",
		"start_date": "2024-08-26",
		"end_date":   "2024-08-28",
		"reason":     "Attending a family event",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"days":3`)

	// Employees cannot see the pending queue or approve.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/leaves/pending", emp.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doRequest(t, router, http.MethodPut, "/api/v1/leaves/LA001/approve", emp.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	mgr := login(t, router, "EMP002", "manager123")
	rec = doRequest(t, router, http.MethodGet, "/api/v1/leaves/pending", mgr.Tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "LA001")

	rec = doRequest(t, router, http.MethodPut, "/api/v1/leaves/LA001/approve", mgr.Tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)

	// Finalized applications stay finalized.
	rec = doRequest(t, router, http.MethodPut, "/api/v1/leaves/LA001/reject", mgr.Tokens.AccessToken, map[string]string{
		"reason": "changed my mind",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLeaveApplyValidationDetails(t *testing.T) {
	router := newTestRouter(t)
	emp := login(t, router, "EMP001", "password123")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/leaves/", emp.Tokens.AccessToken, map[string]string{
		"type":       "annual",
		"start_date": "2024-08-28",
		"end_date":   "2024-08-26",
		"reason":     "short",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "end_date")
	assert.Contains(t, rec.Body.String(), "reason")
}

func TestDashboardAuthorization(t *testing.T) {
	router := newTestRouter(t)

	emp := login(t, router, "EMP001", "password123")
	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/admin", emp.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doRequest(t, router, http.MethodGet, "/api/v1/dashboard/team", emp.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	mgr := login(t, router, "EMP002", "manager123")
	rec = doRequest(t, router, http.MethodGet, "/api/v1/dashboard/team", mgr.Tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMP003")

	// Managers do not get the admin overview.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/dashboard/admin", mgr.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := login(t, router, "ADMIN001", "admin123")
	rec = doRequest(t, router, http.MethodGet, "/api/v1/dashboard/admin", admin.Tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_employees")
}

func TestEmployeeEndpoints(t *testing.T) {
	router := newTestRouter(t)

	emp := login(t, router, "EMP001", "password123")
	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees/my", emp.Tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sarah Johnson")

	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees/", emp.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := login(t, router, "ADMIN001", "admin123")
	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees/", admin.Tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, strings.Count(rec.Body.String(), `"leave_balance"`))
}

func TestMyAttendanceAndSummary(t *testing.T) {
	router := newTestRouter(t)
	emp := login(t, router, "EMP001", "password123")
	token := emp.Tokens.AccessToken

	rec := doRequest(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/attendance/my", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_count":1`)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/attendance/my/summary?period=week", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"present":1`)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/attendance/my/summary?period=quarter", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
