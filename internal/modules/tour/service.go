package tour

import (
	"time"

	"github.com/google/uuid"

	"fleetbook/internal/domain"
	"fleetbook/internal/modules/availability"
	"fleetbook/internal/store"
)

type Store interface {
	Tours() []domain.Tour
	TourByID(id string) (domain.Tour, bool)
	Reservations() []domain.Reservation
	Commit(fn func(st *store.State) error, touched ...string) error
}

type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) List() []domain.Tour {
	return s.store.Tours()
}

func (s *Service) Get(id string) (*domain.Tour, error) {
	t, ok := s.store.TourByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

// RemainingCapacity is the number of seats still open for a date.
func (s *Service) RemainingCapacity(id string, date time.Time) (int, error) {
	t, ok := s.store.TourByID(id)
	if !ok {
		return 0, ErrNotFound
	}
	return availability.RemainingTourCapacity(t, s.store.Reservations(), date), nil
}

// Upsert creates or updates a tour.
func (s *Service) Upsert(t domain.Tour) (*domain.Tour, error) {
	if t.Title == "" || t.Capacity < 1 || t.PricePerPerson < 0 {
		return nil, ErrValidation
	}

	now := s.now()
	err := s.store.Commit(func(st *store.State) error {
		if t.ID == "" {
			t.ID = s.newID()
			t.CreatedAt = now
		} else {
			existing, ok := st.TourByID(t.ID)
			if !ok {
				return ErrNotFound
			}
			t.CreatedAt = existing.CreatedAt
		}
		t.UpdatedAt = now
		st.UpsertTour(t)
		return nil
	}, "tours")
	if err != nil {
		return nil, err
	}
	return &t, nil
}
