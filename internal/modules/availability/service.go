package availability

import (
	"time"

	"fleetbook/internal/domain"
	"fleetbook/internal/modules/pricing"
)

// DefaultBufferDays is the turnaround gap appended after a reservation's
// end date before the vehicle counts as free again.
const DefaultBufferDays = 1

// VehicleAvailable decides whether a vehicle can be booked for the
// requested range. Checks run in precedence order and short-circuit:
// maintenance, then taxi-duty assignment, then reservation overlap.
// A zero start or end means no range was requested (browsing mode) and
// only the first two checks apply.
func VehicleAvailable(v domain.Vehicle, drivers []domain.Driver, reservations []domain.Reservation, start, end time.Time) bool {
	if v.Status == domain.VehicleMaintenance {
		return false
	}

	for _, d := range drivers {
		if d.CurrentVehicleID == v.ID && d.OnDuty() {
			return false
		}
	}

	if start.IsZero() || end.IsZero() {
		return true
	}

	for _, r := range reservations {
		if r.Kind != domain.KindVehicle || r.Vehicle == nil || r.Vehicle.VehicleID != v.ID {
			continue
		}
		if r.Status == domain.ReservationCancelled {
			continue
		}
		if pricing.Overlaps(start, end, r.Vehicle.StartDate, r.Vehicle.EndDate, DefaultBufferDays) {
			return false
		}
	}
	return true
}

// RentableFleet filters the fleet down to what rental customers may see:
// taxi-only units are excluded outright, the rest must pass
// VehicleAvailable for the requested range.
func RentableFleet(vehicles []domain.Vehicle, drivers []domain.Driver, reservations []domain.Reservation, start, end time.Time) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.Rentable() {
			continue
		}
		if !VehicleAvailable(v, drivers, reservations, start, end) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// RemainingTourCapacity is the tour's capacity minus the passengers of
// every non-cancelled booking for that exact date, floored at zero.
func RemainingTourCapacity(t domain.Tour, reservations []domain.Reservation, date time.Time) int {
	booked := 0
	for _, r := range reservations {
		if r.Kind != domain.KindTour || r.Tour == nil || r.Tour.TourID != t.ID {
			continue
		}
		if r.Status == domain.ReservationCancelled {
			continue
		}
		if sameDay(r.Tour.Date, date) {
			booked += r.Tour.Passengers
		}
	}
	remaining := t.Capacity - booked
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
