package store

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Listener is notified after a dispatched action has been applied. Listeners
// run while the store is locked, one dispatch at a time in commit order, so
// they must not block or call back into the store.
type Listener func(a Action, next State)

// Store owns the current snapshot. Dispatch is the single writer entry point;
// Snapshot never blocks and always returns a complete state.
type Store struct {
	mu        sync.Mutex
	current   atomic.Pointer[State]
	listeners []Listener
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Store {
	return NewWithState(Initial(), logger)
}

// NewWithState starts a store from an existing snapshot, e.g. a test fixture.
func NewWithState(initial State, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	initial.Employees = cloneOrEmpty(initial.Employees)
	initial.AttendanceRecords = cloneOrEmpty(initial.AttendanceRecords)

	s := &Store{logger: logger}
	s.current.Store(&initial)
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	return *s.current.Load()
}

// Dispatch applies a and returns the resulting snapshot.
func (s *Store) Dispatch(a Action) State {
	next, _ := s.Apply(func(State) (Action, error) { return a, nil })
	return next
}

// Apply runs decide against the current snapshot and dispatches the action it
// returns, all under the dispatch lock, so no other write lands between the
// read and the write. A decide error or a nil action leaves the store as is.
// decide must not call back into the store.
func (s *Store) Apply(decide func(current State) (Action, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := *s.current.Load()
	a, err := decide(current)
	if err != nil || a == nil {
		return current, err
	}

	next := Reduce(current, a)
	s.current.Store(&next)

	s.logger.Debug("Store action applied",
		"action", a.Type(),
		"employees", len(next.Employees),
		"attendance_records", len(next.AttendanceRecords),
	)

	for _, l := range s.listeners {
		l(a, next)
	}
	return next, nil
}

// Subscribe registers l for every subsequent dispatch.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listeners := make([]Listener, len(s.listeners), len(s.listeners)+1)
	copy(listeners, s.listeners)
	s.listeners = append(listeners, l)
}
