package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRepository_Load(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	require.NoError(t, setup.ResetTables(ctx))

	_, err := setup.DB.Exec(ctx, `
		INSERT INTO employees (id, name, email, phone, department, position, hire_date, status) VALUES
			('2', 'Jane Smith', 'jane@example.com', '555-0102', 'Marketing', 'Manager', '2022-06-01', 'inactive'),
			('1', 'John Doe', 'john@example.com', '555-0101', 'Engineering', 'Engineer', '2023-01-15', 'active')
	`)
	require.NoError(t, err)

	_, err = setup.DB.Exec(ctx, `
		INSERT INTO attendance_records (id, employee_id, date, check_in, check_out, status, work_hours, overtime_hours) VALUES
			('r1', '1', '2024-03-11', '09:00:00', '17:30:00', 'present', 8.5, 0.5),
			('r2', '2', '2024-03-11', NULL, NULL, 'leave', 0, 0)
	`)
	require.NoError(t, err)

	snapshot, err := postgresql.NewSeedRepository(setup.DB).Load(ctx)
	require.NoError(t, err)

	// insertion order is preserved
	require.Len(t, snapshot.Employees, 2)
	assert.Equal(t, "2", snapshot.Employees[0].ID)
	assert.Equal(t, employee.StatusInactive, snapshot.Employees[0].Status)
	assert.Equal(t, "2023-01-15", snapshot.Employees[1].HireDate)

	require.Len(t, snapshot.AttendanceRecords, 2)
	first := snapshot.AttendanceRecords[0]
	assert.Equal(t, "2024-03-11", first.Date)
	require.NotNil(t, first.CheckIn)
	assert.Equal(t, "09:00:00", *first.CheckIn)
	require.NotNil(t, first.CheckOut)
	assert.Equal(t, "17:30:00", *first.CheckOut)
	assert.Equal(t, 8.5, first.WorkHours)
	assert.Equal(t, 0.5, first.OvertimeHours)

	second := snapshot.AttendanceRecords[1]
	assert.Nil(t, second.CheckIn)
	assert.Nil(t, second.CheckOut)
	assert.Equal(t, attendance.StatusLeave, second.Status)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	require.NoError(t, setup.ResetTables(ctx))

	sentinel := errors.New("abort")
	err := postgresql.WithTransaction(ctx, setup.DB, func(ctx context.Context) error {
		q := postgresql.GetQuerier(ctx, setup.DB)
		_, err := q.Exec(ctx, `INSERT INTO employees (id, name, email, hire_date) VALUES ('x', 'X', 'x@example.com', '2024-01-01')`)
		require.NoError(t, err)
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	var count int
	require.NoError(t, setup.DB.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&count))
	assert.Equal(t, 0, count)
}
