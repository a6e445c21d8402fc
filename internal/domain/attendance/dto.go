package attendance

import (
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date,omitempty"` // defaults to today
}

func (r *CheckInRequest) Validate() error {
	return validateEmployeeDay(r.EmployeeID, r.Date)
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date,omitempty"` // defaults to today
}

func (r *CheckOutRequest) Validate() error {
	return validateEmployeeDay(r.EmployeeID, r.Date)
}

type SetStatusRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date,omitempty"` // defaults to today
	Status     Status `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validateEmployeeDay(r.EmployeeID, r.Date); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEmployeeDay(employeeID, date string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	Date string `json:"date,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	if f.Date == "" {
		return nil
	}
	if _, ok := validator.IsValidDate(f.Date); !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return nil
}

type ListAttendanceResponse struct {
	Date    string   `json:"date"`
	Records []Record `json:"records"`
}
