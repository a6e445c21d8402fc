package attendance

import (
	"context"
)

// AttendanceService defines the daily attendance flows
type AttendanceService interface {
	// ListByDate returns the records of a given day, today when date is empty
	ListByDate(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// CheckIn stamps the current time as check-in, creating the day's record if needed
	CheckIn(ctx context.Context, req CheckInRequest) (Record, error)

	// CheckOut stamps the current time as check-out and computes work hours
	CheckOut(ctx context.Context, req CheckOutRequest) (Record, error)

	// SetStatus tags the day's record with a status, creating it if needed
	SetStatus(ctx context.Context, req SetStatusRequest) (Record, error)
}
