package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is inactive")
	ErrInvalidStatus    = errors.New("status must be active or inactive")
)
