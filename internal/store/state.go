// Package store holds the in-memory employee roster and attendance records.
//
// Every mutation goes through Dispatch, which runs the pure Reduce function
// and swaps in the resulting State. A State is never modified after it has
// been published, so readers holding an older snapshot keep a consistent view.
package store

import (
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
)

// State is one immutable snapshot. Callers must treat the slices as read-only.
type State struct {
	Employees         []employee.Employee `json:"employees"`
	AttendanceRecords []attendance.Record `json:"attendance_records"`
	Loading           bool                `json:"loading"`
	Error             string              `json:"error,omitempty"`
}

// Initial is the empty state a new store starts from.
func Initial() State {
	return State{
		Employees:         []employee.Employee{},
		AttendanceRecords: []attendance.Record{},
	}
}
