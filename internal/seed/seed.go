// Package seed bulk-loads the initial snapshot into a store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
)

type Snapshot struct {
	Employees         []employee.Employee `json:"employees"`
	AttendanceRecords []attendance.Record `json:"attendance_records"`
}

// Validate rejects records whose check-in or check-out is not a 24 hour
// "HH:MM" or "HH:MM:SS" time. Missing times are allowed.
func (s Snapshot) Validate() error {
	var errs validator.ValidationErrors
	for i, r := range s.AttendanceRecords {
		if r.CheckIn != nil && !validator.IsValidClockTime(*r.CheckIn) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("attendance_records[%d].check_in", i),
				Message: "invalid time " + *r.CheckIn,
			})
		}
		if r.CheckOut != nil && !validator.IsValidClockTime(*r.CheckOut) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("attendance_records[%d].check_out", i),
				Message: "invalid time " + *r.CheckOut,
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Loader produces the collections to install at startup.
type Loader interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Run installs the loader's snapshot. The loading flag is raised for the
// duration of the load. On failure the store keeps its collections, its
// error field carries the message, and the error is returned.
func Run(ctx context.Context, s *store.Store, loader Loader) error {
	s.Dispatch(store.SetLoading{Loading: true})
	defer s.Dispatch(store.SetLoading{Loading: false})

	snapshot, err := loader.Load(ctx)
	if err == nil {
		err = snapshot.Validate()
	}
	if err != nil {
		s.Dispatch(store.SetError{Message: err.Error()})
		return fmt.Errorf("load seed data: %w", err)
	}

	s.Dispatch(store.SetEmployees{Employees: snapshot.Employees})
	s.Dispatch(store.SetAttendanceRecords{Records: snapshot.AttendanceRecords})
	s.Dispatch(store.SetError{})

	slog.Info("Seed data loaded",
		"employees", len(snapshot.Employees),
		"attendance_records", len(snapshot.AttendanceRecords),
	)
	return nil
}
