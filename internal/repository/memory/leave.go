package memory

import (
	"context"
	"sync"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
)

type LeaveRepository struct {
	mu           sync.RWMutex
	applications []leave.LeaveApplication
	index        map[string]int // id -> position in applications
}

func NewLeaveRepository(seed ...leave.LeaveApplication) *LeaveRepository {
	r := &LeaveRepository{
		index: make(map[string]int),
	}
	for _, l := range seed {
		r.index[l.ID] = len(r.applications)
		r.applications = append(r.applications, l)
	}
	return r
}

// Create implements leave.LeaveRepository.
func (r *LeaveRepository) Create(_ context.Context, l leave.LeaveApplication) (leave.LeaveApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index[l.ID] = len(r.applications)
	r.applications = append(r.applications, l)
	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *LeaveRepository) GetByID(_ context.Context, id string) (leave.LeaveApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return leave.LeaveApplication{}, leave.ErrLeaveNotFound
	}
	return r.applications[pos], nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *LeaveRepository) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []leave.LeaveApplication
	for _, l := range r.applications {
		if l.EmployeeID == employeeID {
			result = append(result, l)
		}
	}
	return result, nil
}

// ListPending implements leave.LeaveRepository.
func (r *LeaveRepository) ListPending(_ context.Context) ([]leave.LeaveApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []leave.LeaveApplication
	for _, l := range r.applications {
		if l.Status == leave.StatusPending {
			result = append(result, l)
		}
	}
	return result, nil
}

// ListApprovedOn implements leave.LeaveRepository.
func (r *LeaveRepository) ListApprovedOn(_ context.Context, date time.Time) ([]leave.LeaveApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []leave.LeaveApplication
	for _, l := range r.applications {
		if l.Status == leave.StatusApproved && l.Covers(date) {
			result = append(result, l)
		}
	}
	return result, nil
}

// Finalize implements leave.LeaveRepository. fn runs under the write lock
// and sees the stored record; its mutation is only kept when it returns
// nil, so a concurrent approve and reject on the same id produce exactly
// one winner.
func (r *LeaveRepository) Finalize(_ context.Context, id string, fn func(*leave.LeaveApplication) error) (leave.LeaveApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return leave.LeaveApplication{}, leave.ErrLeaveNotFound
	}

	updated := r.applications[pos]
	if err := fn(&updated); err != nil {
		return leave.LeaveApplication{}, err
	}
	r.applications[pos] = updated
	return updated, nil
}
