package fleet

import (
	"time"

	"github.com/google/uuid"

	"fleetbook/internal/domain"
	"fleetbook/internal/modules/availability"
	"fleetbook/internal/modules/reservation"
	"fleetbook/internal/store"
)

type Store interface {
	Vehicles() []domain.Vehicle
	VehicleByID(id string) (domain.Vehicle, bool)
	Drivers() []domain.Driver
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

// VehicleView decorates a vehicle with its projected display status.
type VehicleView struct {
	domain.Vehicle
	DisplayStatus domain.VehicleStatus `json:"display_status"`
}

// PublicFleet lists what rental customers may browse: taxi-only units
// are never shown, and with a requested range only bookable vehicles
// remain. Zero start/end means browsing mode.
func (s *Service) PublicFleet(start, end time.Time) []VehicleView {
	vehicles := availability.RentableFleet(s.store.Vehicles(), s.store.Drivers(), s.store.Reservations(), start, end)
	return s.decorate(vehicles)
}

// AdminFleet lists every vehicle, taxi units included.
func (s *Service) AdminFleet() []VehicleView {
	return s.decorate(s.store.Vehicles())
}

func (s *Service) decorate(vehicles []domain.Vehicle) []VehicleView {
	reservations := s.store.Reservations()
	today := s.now()
	out := make([]VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleView{
			Vehicle:       v,
			DisplayStatus: reservation.ProjectDisplayStatus(v, reservations, today),
		})
	}
	return out
}

func (s *Service) Get(id string) (*VehicleView, error) {
	v, ok := s.store.VehicleByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &VehicleView{
		Vehicle:       v,
		DisplayStatus: reservation.ProjectDisplayStatus(v, s.store.Reservations(), s.now()),
	}, nil
}

// Available answers the bookability question for one vehicle and range.
func (s *Service) Available(id string, start, end time.Time) (bool, error) {
	v, ok := s.store.VehicleByID(id)
	if !ok {
		return false, ErrNotFound
	}
	if !v.Rentable() {
		return false, nil
	}
	return availability.VehicleAvailable(v, s.store.Drivers(), s.store.Reservations(), start, end), nil
}

// Upsert creates or updates a vehicle. New vehicles start available
// unless the admin says otherwise.
func (s *Service) Upsert(v domain.Vehicle) (*domain.Vehicle, error) {
	if v.Make == "" || v.Model == "" || v.PricePerDay < 0 {
		return nil, ErrValidation
	}

	now := s.now()
	err := s.store.Commit(func(st *store.State) error {
		if v.ID == "" {
			v.ID = s.newID()
			v.CreatedAt = now
			if v.Status == "" {
				v.Status = domain.VehicleAvailable
				v.Available = true
			}
		} else {
			existing, ok := st.VehicleByID(v.ID)
			if !ok {
				return ErrNotFound
			}
			v.CreatedAt = existing.CreatedAt
		}
		if v.Usage == "" {
			v.Usage = domain.UsageRental
		}
		v.UpdatedAt = now
		st.UpsertVehicle(v)
		return nil
	}, "vehicles")
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SetMaintenance flips the stored maintenance flag; maintenance is the
// source of truth for availability exclusion.
func (s *Service) SetMaintenance(id string, on bool) (*domain.Vehicle, error) {
	var updated domain.Vehicle
	err := s.store.Commit(func(st *store.State) error {
		v, ok := st.VehicleByID(id)
		if !ok {
			return ErrNotFound
		}
		if on {
			v.Status = domain.VehicleMaintenance
			v.Available = false
		} else {
			v.Status = domain.VehicleAvailable
			v.Available = true
		}
		v.UpdatedAt = s.now()
		st.UpsertVehicle(v)
		updated = v
		return nil
	}, "vehicles")
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a vehicle, refused while any non-terminal reservation
// still references it.
func (s *Service) Delete(id string) error {
	return s.store.Commit(func(st *store.State) error {
		if _, ok := st.VehicleByID(id); !ok {
			return ErrNotFound
		}
		for _, r := range st.Reservations {
			if r.Kind == domain.KindVehicle && r.Vehicle != nil && r.Vehicle.VehicleID == id && !r.Terminal() {
				return ErrHasReservations
			}
		}
		st.RemoveVehicle(id)
		return nil
	}, "vehicles")
}
