package employee

import (
	"context"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
)

// EmployeeService defines business logic for the employee roster
type EmployeeService interface {
	// ListEmployees lists employees, optionally filtered by a search term and status
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (Employee, error)

	// CreateEmployee assigns a fresh ID and appends the employee to the roster
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// UpdateEmployee replaces an existing employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes an employee together with its attendance records
	DeleteEmployee(ctx context.Context, id string) error

	// GetEmployeeAttendance returns all attendance records of an employee
	GetEmployeeAttendance(ctx context.Context, id string) ([]attendance.Record, error)
}
