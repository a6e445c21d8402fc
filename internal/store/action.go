package store

import (
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
)

type ActionType string

const (
	ActionSetLoading             ActionType = "SET_LOADING"
	ActionSetError               ActionType = "SET_ERROR"
	ActionSetEmployees           ActionType = "SET_EMPLOYEES"
	ActionAddEmployee            ActionType = "ADD_EMPLOYEE"
	ActionUpdateEmployee         ActionType = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee         ActionType = "DELETE_EMPLOYEE"
	ActionSetAttendanceRecords   ActionType = "SET_ATTENDANCE_RECORDS"
	ActionAddAttendanceRecord    ActionType = "ADD_ATTENDANCE_RECORD"
	ActionUpdateAttendanceRecord ActionType = "UPDATE_ATTENDANCE_RECORD"
)

// Action is the closed set of mutations accepted by the store. The unexported
// method keeps implementations inside this package.
type Action interface {
	Type() ActionType
	action()
}

type SetLoading struct{ Loading bool }

type SetError struct{ Message string }

type SetEmployees struct{ Employees []employee.Employee }

// AddEmployee appends as-is; the caller supplies a unique ID.
type AddEmployee struct{ Employee employee.Employee }

type UpdateEmployee struct{ Employee employee.Employee }

// DeleteEmployee also drops every attendance record of that employee.
type DeleteEmployee struct{ EmployeeID string }

type SetAttendanceRecords struct{ Records []attendance.Record }

type AddAttendanceRecord struct{ Record attendance.Record }

type UpdateAttendanceRecord struct{ Record attendance.Record }

func (SetLoading) Type() ActionType             { return ActionSetLoading }
func (SetError) Type() ActionType               { return ActionSetError }
func (SetEmployees) Type() ActionType           { return ActionSetEmployees }
func (AddEmployee) Type() ActionType            { return ActionAddEmployee }
func (UpdateEmployee) Type() ActionType         { return ActionUpdateEmployee }
func (DeleteEmployee) Type() ActionType         { return ActionDeleteEmployee }
func (SetAttendanceRecords) Type() ActionType   { return ActionSetAttendanceRecords }
func (AddAttendanceRecord) Type() ActionType    { return ActionAddAttendanceRecord }
func (UpdateAttendanceRecord) Type() ActionType { return ActionUpdateAttendanceRecord }

func (SetLoading) action()             {}
func (SetError) action()               {}
func (SetEmployees) action()           {}
func (AddEmployee) action()            {}
func (UpdateEmployee) action()         {}
func (DeleteEmployee) action()         {}
func (SetAttendanceRecords) action()   {}
func (AddAttendanceRecord) action()    {}
func (UpdateAttendanceRecord) action() {}
