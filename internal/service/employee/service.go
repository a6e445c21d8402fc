package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-dashboard/internal/derive"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewEmployeeService(st *store.Store, clk clock.Clock) employee.EmployeeService {
	return &EmployeeServiceImpl{
		store: st,
		clock: clk,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	snap := s.store.Snapshot()

	employees := []employee.Employee{}
	for _, e := range snap.Employees {
		if filter.Matches(e) {
			employees = append(employees, e)
		}
	}

	return employee.ListEmployeeResponse{
		Employees:   employees,
		TotalItems:  len(employees),
		Departments: derive.Departments(snap),
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := derive.LookupEmployee(s.store.Snapshot(), id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	newEmployee := employee.Employee{
		ID:         id.String(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		HireDate:   req.HireDate,
		Status:     req.Status,
	}
	if newEmployee.HireDate == "" {
		newEmployee.HireDate = clock.Today(s.clock)
	}
	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}

	s.store.Dispatch(store.AddEmployee{Employee: newEmployee})
	slog.Info("Employee created", "employee_id", newEmployee.ID, "department", newEmployee.Department)

	return newEmployee, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, ok := derive.LookupEmployee(s.store.Snapshot(), req.ID); !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	updated := req.ToEmployee()
	s.store.Dispatch(store.UpdateEmployee{Employee: updated})
	slog.Info("Employee updated", "employee_id", updated.ID, "status", updated.Status)

	return updated, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	snap := s.store.Snapshot()
	if _, ok := derive.LookupEmployee(snap, id); !ok {
		return employee.ErrEmployeeNotFound
	}

	removed := len(derive.RecordsForEmployee(snap, id))
	s.store.Dispatch(store.DeleteEmployee{EmployeeID: id})
	slog.Info("Employee deleted", "employee_id", id, "attendance_records_removed", removed)

	return nil
}

// GetEmployeeAttendance implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeAttendance(ctx context.Context, id string) ([]attendance.Record, error) {
	snap := s.store.Snapshot()
	if _, ok := derive.LookupEmployee(snap, id); !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return derive.RecordsForEmployee(snap, id), nil
}
