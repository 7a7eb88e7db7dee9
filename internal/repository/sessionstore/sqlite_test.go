package sessionstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetWithoutSession(t *testing.T) {
	store := newTestStore(t)

	emp, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, emp)
}

func TestSetAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, employee.Employee{
		ID:           "EMP001",
		Name:         "Sarah Johnson",
		Role:         employee.RoleEmployee,
		Department:   "Engineering",
		Email:        "sarah.johnson@company.com",
		LeaveBalance: employee.LeaveBalance{Annual: 15, Sick: 8, Personal: 3},
		PasswordHash: "should-never-be-stored",
	}))

	emp, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "EMP001", emp.ID)
	assert.Equal(t, 15, emp.LeaveBalance.Annual)
	assert.Empty(t, emp.PasswordHash)
}

func TestSetReplacesPreviousSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, employee.Employee{ID: "EMP001", Name: "Sarah Johnson"}))
	require.NoError(t, store.Set(ctx, employee.Employee{ID: "ADMIN001", Name: "David Wilson", Role: employee.RoleAdmin}))

	emp, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "ADMIN001", emp.ID)
	assert.Equal(t, employee.RoleAdmin, emp.Role)
}

func TestSessionSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	store, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, employee.Employee{ID: "EMP002", Name: "Michael Chen"}))
	require.NoError(t, store.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	emp, err := reopened.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "EMP002", emp.ID)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, employee.Employee{ID: "EMP001"}))
	require.NoError(t, store.Clear(ctx))

	emp, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, emp)

	// Clearing an empty store is fine.
	require.NoError(t, store.Clear(ctx))
}
