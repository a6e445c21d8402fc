package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-dashboard/internal/seed"
)

// Schema is the layout the seed repository reads from.
const Schema = `
	CREATE TABLE IF NOT EXISTS employees (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT NOT NULL DEFAULT '',
		department  TEXT NOT NULL DEFAULT '',
		position    TEXT NOT NULL DEFAULT '',
		hire_date   DATE NOT NULL,
		status      TEXT NOT NULL DEFAULT 'active',
		sort_order  BIGSERIAL
	);

	CREATE TABLE IF NOT EXISTS attendance_records (
		id              TEXT PRIMARY KEY,
		employee_id     TEXT NOT NULL,
		date            DATE NOT NULL,
		check_in        TIME,
		check_out       TIME,
		status          TEXT NOT NULL,
		work_hours      NUMERIC(6,2) NOT NULL DEFAULT 0,
		overtime_hours  NUMERIC(6,2) NOT NULL DEFAULT 0,
		sort_order      BIGSERIAL
	);
`

type seedRepository struct {
	db *database.DB
}

func NewSeedRepository(db *database.DB) seed.Loader {
	return &seedRepository{db: db}
}

// Load reads both collections inside one transaction so the snapshot is
// consistent. Rows come back in insertion order.
func (r *seedRepository) Load(ctx context.Context) (seed.Snapshot, error) {
	var snapshot seed.Snapshot

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		employees, err := r.listEmployees(ctx)
		if err != nil {
			return err
		}
		records, err := r.listAttendanceRecords(ctx)
		if err != nil {
			return err
		}
		snapshot = seed.Snapshot{Employees: employees, AttendanceRecords: records}
		return nil
	})
	if err != nil {
		return seed.Snapshot{}, err
	}

	return snapshot, nil
}

func (r *seedRepository) listEmployees(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, phone, department, position,
			to_char(hire_date, 'YYYY-MM-DD'), status
		FROM employees
		ORDER BY sort_order
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.Phone, &emp.Department,
			&emp.Position, &emp.HireDate, &emp.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *seedRepository) listAttendanceRecords(ctx context.Context) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'),
			to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS'),
			status, work_hours::float8, overtime_hours::float8
		FROM attendance_records
		ORDER BY sort_order
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date,
			&rec.CheckIn, &rec.CheckOut,
			&rec.Status, &rec.WorkHours, &rec.OvertimeHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
