package report

import "errors"

var (
	ErrInvalidPeriod = errors.New("period must be one of week, month, quarter, custom")
	ErrInvalidLimit  = errors.New("limit must be a positive number")
	ErrRangeTooLong  = errors.New("date range must not exceed 366 days")
)
