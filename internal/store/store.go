package store

import (
	"log"
	"sync"

	"fleetbook/internal/domain"
)

// Persister writes a full snapshot of the state somewhere durable.
// It is invoked after every committed mutation, fire-and-forget: a
// persistence failure is logged and never rolls back memory.
type Persister interface {
	Persist(st State) error
}

// ChangeListener is notified with the name of each touched collection
// after a commit (the dashboard event hub subscribes here).
type ChangeListener func(entity string)

// Store is the single authoritative holder of all domain collections.
// It is also the one serialization point: Commit runs the caller's
// validate-and-mutate closure under the write lock, so concurrent
// requests cannot interleave between an availability check and the
// insert that depends on it.
type Store struct {
	mu        sync.RWMutex
	state     State
	persister Persister
	listeners []ChangeListener
}

func New(initial State, p Persister) *Store {
	return &Store{state: initial, persister: p}
}

func (s *Store) Subscribe(fn ChangeListener) {
	s.listeners = append(s.listeners, fn)
}

// Commit applies fn to the state under the write lock and, on success,
// persists a snapshot and notifies listeners for each touched collection.
// Closures must follow construct-then-commit: validate first, mutate only
// once nothing can fail, so an error return leaves the state untouched.
func (s *Store) Commit(fn func(st *State) error, touched ...string) error {
	s.mu.Lock()
	err := fn(&s.state)
	var snapshot State
	if err == nil {
		snapshot = s.state.Clone()
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}

	if s.persister != nil {
		if perr := s.persister.Persist(snapshot); perr != nil {
			log.Printf("store: persist failed: %v", perr)
		}
	}
	for _, fn := range s.listeners {
		for _, entity := range touched {
			fn(entity)
		}
	}
	return nil
}

func (s *Store) Vehicles() []domain.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Vehicle(nil), s.state.Vehicles...)
}

func (s *Store) Reservations() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Reservation, 0, len(s.state.Reservations))
	for _, r := range s.state.Reservations {
		out = append(out, cloneReservation(r))
	}
	return out
}

func (s *Store) Expenses() []domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Expense(nil), s.state.Expenses...)
}

func (s *Store) Drivers() []domain.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Driver(nil), s.state.Drivers...)
}

func (s *Store) Tours() []domain.Tour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Tour, 0, len(s.state.Tours))
	for _, t := range s.state.Tours {
		out = append(out, cloneTour(t))
	}
	return out
}

func (s *Store) TaxiLogs() []domain.TaxiLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.TaxiLog(nil), s.state.TaxiLogs...)
}

func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.state.Categories...)
}

func (s *Store) VehicleByID(id string) (domain.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.VehicleByID(id)
}

func (s *Store) ReservationByID(id string) (domain.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ReservationByID(id)
}

func (s *Store) DriverByID(id string) (domain.Driver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.DriverByID(id)
}

func (s *Store) TourByID(id string) (domain.Tour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TourByID(id)
}
