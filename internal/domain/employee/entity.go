package employee

type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date"` // YYYY-MM-DD
	Status     Status `json:"status"`
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// IsActive reports whether the employee counts toward attendance-rate
// denominators.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
