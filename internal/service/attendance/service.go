package attendance

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

type AttendanceServiceImpl struct {
	store             *store.Store
	clock             clock.Clock
	standardWorkHours float64
}

func NewAttendanceService(st *store.Store, clk clock.Clock, standardWorkHours float64) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		store:             st,
		clock:             clk,
		standardWorkHours: standardWorkHours,
	}
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	date := s.dateOrToday(filter.Date)
	return attendance.ListAttendanceResponse{
		Date:    date,
		Records: derive.RecordsOnDate(s.store.Snapshot(), date),
	}, nil
}

// CheckIn implements attendance.AttendanceService. The lookup and the write
// happen under the store lock, so concurrent requests never create two
// records for one (employee, date) and never add one after the employee is
// deleted.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	date := s.dateOrToday(req.Date)
	now := clock.TimeOfDay(s.clock)

	var record attendance.Record
	_, err := s.store.Apply(func(snap store.State) (store.Action, error) {
		if err := requireActiveEmployee(snap, req.EmployeeID); err != nil {
			return nil, err
		}

		existing, found := derive.RecordForEmployeeOnDate(snap, req.EmployeeID, date)
		if found {
			if existing.CheckIn != nil {
				return nil, attendance.ErrAlreadyCheckedIn
			}
			// a day tagged absent in advance flips to present on arrival
			existing.CheckIn = &now
			if existing.Status == attendance.StatusAbsent {
				existing.Status = attendance.StatusPresent
			}
			record = existing
			return store.UpdateAttendanceRecord{Record: existing}, nil
		}

		id, err := newRecordID()
		if err != nil {
			return nil, err
		}
		record = attendance.Record{
			ID:         id,
			EmployeeID: req.EmployeeID,
			Date:       date,
			CheckIn:    &now,
			Status:     attendance.StatusPresent,
		}
		return store.AddAttendanceRecord{Record: record}, nil
	})
	if err != nil {
		return attendance.Record{}, err
	}

	slog.Info("Employee checked in", "employee_id", req.EmployeeID, "date", date, "check_in", now)
	return record, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	date := s.dateOrToday(req.Date)
	now := clock.TimeOfDay(s.clock)

	var record attendance.Record
	_, err := s.store.Apply(func(snap store.State) (store.Action, error) {
		if err := requireActiveEmployee(snap, req.EmployeeID); err != nil {
			return nil, err
		}

		existing, found := derive.RecordForEmployeeOnDate(snap, req.EmployeeID, date)
		if !found || existing.CheckIn == nil {
			return nil, attendance.ErrNotCheckedIn
		}
		if existing.CheckOut != nil {
			return nil, attendance.ErrAlreadyCheckedOut
		}

		existing.CheckOut = &now
		existing.WorkHours = derive.ComputeWorkHours(existing.CheckIn, existing.CheckOut)
		existing.OvertimeHours = derive.OvertimeHours(existing.WorkHours, s.standardWorkHours)
		record = existing
		return store.UpdateAttendanceRecord{Record: existing}, nil
	})
	if err != nil {
		return attendance.Record{}, err
	}

	slog.Info("Employee checked out",
		"employee_id", req.EmployeeID,
		"date", date,
		"work_hours", record.WorkHours,
		"overtime_hours", record.OvertimeHours,
	)

	return record, nil
}

// SetStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SetStatus(ctx context.Context, req attendance.SetStatusRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	date := s.dateOrToday(req.Date)

	var record attendance.Record
	_, err := s.store.Apply(func(snap store.State) (store.Action, error) {
		if _, ok := derive.LookupEmployee(snap, req.EmployeeID); !ok {
			return nil, employee.ErrEmployeeNotFound
		}

		existing, found := derive.RecordForEmployeeOnDate(snap, req.EmployeeID, date)
		if found {
			existing.Status = req.Status
			record = existing
			return store.UpdateAttendanceRecord{Record: existing}, nil
		}

		id, err := newRecordID()
		if err != nil {
			return nil, err
		}
		record = attendance.Record{
			ID:         id,
			EmployeeID: req.EmployeeID,
			Date:       date,
			Status:     req.Status,
		}
		return store.AddAttendanceRecord{Record: record}, nil
	})
	if err != nil {
		return attendance.Record{}, err
	}

	return record, nil
}

func (s *AttendanceServiceImpl) dateOrToday(date string) string {
	if date == "" {
		return clock.Today(s.clock)
	}
	return date
}

func requireActiveEmployee(snap store.State, employeeID string) error {
	e, ok := derive.LookupEmployee(snap, employeeID)
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if !e.IsActive() {
		return employee.ErrEmployeeInactive
	}
	return nil
}

func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate attendance record id: %w", err)
	}
	return id.String(), nil
}
