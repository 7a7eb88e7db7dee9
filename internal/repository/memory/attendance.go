package memory

import (
	"context"
	"sync"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records []attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

// CreateIfNoOpen implements attendance.AttendanceRepository. The
// open-record scan and the append share the write lock, so two concurrent
// check-ins for the same employee and date cannot both pass the check.
func (r *AttendanceRepository) CreateIfNoOpen(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		rec := &r.records[i]
		if rec.EmployeeID == att.EmployeeID && sameDate(rec.Date, att.Date) && rec.Open() {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}

	r.records = append(r.records, att)
	return att, nil
}

// CloseOpen implements attendance.AttendanceRepository. Locating the open
// record and stamping its check-out happen under the write lock, so
// concurrent check-outs close it exactly once.
func (r *AttendanceRepository) CloseOpen(_ context.Context, employeeID string, date, checkOut time.Time) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		rec := &r.records[i]
		if rec.EmployeeID == employeeID && sameDate(rec.Date, date) && rec.Open() {
			stamped := checkOut
			rec.CheckOut = &stamped
			return *rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNoOpenRecord
}

// List implements attendance.AttendanceRepository.
func (r *AttendanceRepository) List(_ context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, rec := range r.records {
		if matchesFilter(rec, filter) {
			result = append(result, rec)
		}
	}
	return result, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ListByDate(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, rec := range r.records {
		if sameDate(rec.Date, date) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func matchesFilter(rec attendance.Attendance, filter attendance.AttendanceFilter) bool {
	if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
		return false
	}
	if filter.Status != nil && string(rec.Status) != *filter.Status {
		return false
	}
	day := rec.Date.Format("2006-01-02")
	if filter.Date != nil && day != *filter.Date {
		return false
	}
	if filter.StartDate != nil && day < *filter.StartDate {
		return false
	}
	if filter.EndDate != nil && day > *filter.EndDate {
		return false
	}
	return true
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
