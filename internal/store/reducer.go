package store

import (
	"slices"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
)

// Reduce returns the state that results from applying a to s. It never
// writes into s: any collection it changes is rebuilt in a fresh slice, and
// untouched collections are shared with s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetLoading:
		s.Loading = a.Loading
	case SetError:
		s.Error = a.Message
	case SetEmployees:
		s.Employees = cloneOrEmpty(a.Employees)
	case AddEmployee:
		s.Employees = appendCopy(s.Employees, a.Employee)
	case UpdateEmployee:
		s.Employees = replaceWhere(s.Employees, a.Employee, func(e employee.Employee) bool {
			return e.ID == a.Employee.ID
		})
	case DeleteEmployee:
		s.Employees = removeWhere(s.Employees, func(e employee.Employee) bool {
			return e.ID == a.EmployeeID
		})
		s.AttendanceRecords = removeWhere(s.AttendanceRecords, func(r attendance.Record) bool {
			return r.EmployeeID == a.EmployeeID
		})
	case SetAttendanceRecords:
		s.AttendanceRecords = cloneOrEmpty(a.Records)
	case AddAttendanceRecord:
		s.AttendanceRecords = appendCopy(s.AttendanceRecords, a.Record)
	case UpdateAttendanceRecord:
		s.AttendanceRecords = replaceWhere(s.AttendanceRecords, a.Record, func(r attendance.Record) bool {
			return r.ID == a.Record.ID
		})
	}
	return s
}

func cloneOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}

func appendCopy[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// replaceWhere swaps every matching element for item, mirroring a map over
// the collection. With no match the original slice is returned unchanged.
func replaceWhere[T any](items []T, item T, match func(T) bool) []T {
	if !slices.ContainsFunc(items, match) {
		return items
	}
	out := make([]T, len(items))
	for i, it := range items {
		if match(it) {
			out[i] = item
		} else {
			out[i] = it
		}
	}
	return out
}

func removeWhere[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}
