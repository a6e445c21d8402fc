package attendance

// Record is one employee's attendance for one calendar day.
type Record struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`      // YYYY-MM-DD
	CheckIn       *string `json:"check_in"`  // HH:MM:SS
	CheckOut      *string `json:"check_out"` // HH:MM:SS
	Status        Status  `json:"status"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusLeave}

func (s Status) IsValid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

func (r Record) IsCheckedIn() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}
