// Package clock isolates wall-clock reads so date-dependent code can be
// driven by a fixed time in tests.
package clock

import (
	"sync"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Clock is the time source used for "today" and check-in/check-out stamps.
type Clock interface {
	Now() time.Time
}

// System reads the host clock and reports it in Location.
type System struct {
	Location *time.Location
}

func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.Local
	}
	return System{Location: loc}
}

func (s System) Now() time.Time {
	return time.Now().In(s.Location)
}

// Fixed always reports the same instant until Set is called.
type Fixed struct {
	mu sync.RWMutex
	t  time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

// At builds a Fixed clock from a "YYYY-MM-DD" date and "HH:MM:SS" time in UTC.
// It panics on malformed input and is meant for tests and fixtures.
func At(date, clockTime string) *Fixed {
	t, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+clockTime)
	if err != nil {
		panic(err)
	}
	return NewFixed(t)
}

func (f *Fixed) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.t
}

func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = t
}

// Today returns the calendar date of c in "YYYY-MM-DD" form.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// TimeOfDay returns the wall time of c in "HH:MM:SS" form.
func TimeOfDay(c Clock) string {
	return c.Now().Format(TimeLayout)
}
