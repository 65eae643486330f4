package reservation

import (
	"fleetbook/internal/domain"
	"fleetbook/internal/store"
)

// Store is the slice of the entity store the lifecycle manager needs.
// Quote operations read through the top-level accessors; everything that
// mutates goes through Commit so the availability check and the insert it
// guards run under one lock.
type Store interface {
	VehicleByID(id string) (domain.Vehicle, bool)
	TourByID(id string) (domain.Tour, bool)
	ReservationByID(id string) (domain.Reservation, bool)
	Reservations() []domain.Reservation
	Drivers() []domain.Driver
	Commit(fn func(st *store.State) error, touched ...string) error
}
