// Package derive computes dashboard and report values from a store snapshot.
// Every function is pure: it reads the given State, never mutates it, and
// recomputes from scratch on each call.
package derive

import (
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
)

// LookupEmployee returns the first employee with the given id in collection
// order.
func LookupEmployee(s store.State, id string) (employee.Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return employee.Employee{}, false
}

// RecordsOnDate returns the records of one calendar day in collection order.
func RecordsOnDate(s store.State, date string) []attendance.Record {
	return filterRecords(s.AttendanceRecords, func(r attendance.Record) bool {
		return r.Date == date
	})
}

// RecordsForEmployee returns every record of one employee in collection order.
func RecordsForEmployee(s store.State, employeeID string) []attendance.Record {
	return filterRecords(s.AttendanceRecords, func(r attendance.Record) bool {
		return r.EmployeeID == employeeID
	})
}

// RecordForEmployeeOnDate returns the first record of an employee for a day.
// Callers use it to decide between adding and updating a record.
func RecordForEmployeeOnDate(s store.State, employeeID, date string) (attendance.Record, bool) {
	for _, r := range s.AttendanceRecords {
		if r.EmployeeID == employeeID && r.Date == date {
			return r, true
		}
	}
	return attendance.Record{}, false
}

// TodaysRecords is RecordsOnDate for the clock's current calendar date.
func TodaysRecords(s store.State, c clock.Clock) []attendance.Record {
	return RecordsOnDate(s, clock.Today(c))
}

// ActiveEmployees returns the employees with status active.
func ActiveEmployees(s store.State) []employee.Employee {
	out := make([]employee.Employee, 0, len(s.Employees))
	for _, e := range s.Employees {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	return out
}

// Departments lists distinct departments in order of first appearance.
func Departments(s store.State) []string {
	seen := make(map[string]struct{}, len(s.Employees))
	out := make([]string, 0)
	for _, e := range s.Employees {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	return out
}

func filterRecords(records []attendance.Record, keep func(attendance.Record) bool) []attendance.Record {
	out := make([]attendance.Record, 0)
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func inRange(date, start, end string) bool {
	return date >= start && date <= end
}

// ScopeToDepartment narrows a snapshot to the employees of one department and
// their records. An empty department returns s unchanged.
func ScopeToDepartment(s store.State, department string) store.State {
	if department == "" {
		return s
	}

	scoped := s
	scoped.Employees = make([]employee.Employee, 0)
	ids := make(map[string]struct{})
	for _, e := range s.Employees {
		if e.Department == department {
			scoped.Employees = append(scoped.Employees, e)
			ids[e.ID] = struct{}{}
		}
	}
	scoped.AttendanceRecords = filterRecords(s.AttendanceRecords, func(r attendance.Record) bool {
		_, ok := ids[r.EmployeeID]
		return ok
	})
	return scoped
}
