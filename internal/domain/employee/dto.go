package employee

import (
	"strings"

	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date,omitempty"` // defaults to today
	Status     Status `json:"status,omitempty"`    // defaults to active
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	errs = append(errs, validateProfile(r.Name, r.Email, r.HireDate)...)

	if r.Status != "" && !r.Status.IsValid() {
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

type UpdateEmployeeRequest struct {
	ID         string `json:"-"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date"`
	Status     Status `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	errs = append(errs, validateProfile(r.Name, r.Email, r.HireDate)...)

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
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

// ToEmployee builds the full replacement record for the roster.
func (r UpdateEmployeeRequest) ToEmployee() Employee {
	return Employee{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Department: r.Department,
		Position:   r.Position,
		HireDate:   r.HireDate,
		Status:     r.Status,
	}
}

func validateProfile(name, email, hireDate string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if hireDate != "" {
		if _, ok := validator.IsValidDate(hireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	return errs
}

type EmployeeFilter struct {
	Search string  `json:"search,omitempty"`
	Status *Status `json:"status,omitempty"`
}

func (f *EmployeeFilter) Validate() error {
	if f.Status != nil && !f.Status.IsValid() {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		}}
	}
	return nil
}

// Matches reports whether e passes the filter. Search is a case-insensitive
// substring match on name or department.
func (f EmployeeFilter) Matches(e Employee) bool {
	if f.Status != nil && e.Status != *f.Status {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.Department), term)
}

type ListEmployeeResponse struct {
	Employees   []Employee `json:"employees"`
	TotalItems  int        `json:"total_items"`
	Departments []string   `json:"departments"`
}
