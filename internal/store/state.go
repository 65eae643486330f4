package store

import "fleetbook/internal/domain"

// State holds every domain collection. The Store owns the authoritative
// copy; services receive deep copies on read and mutate only through
// Store.Commit.
type State struct {
	Vehicles     []domain.Vehicle
	Reservations []domain.Reservation
	Expenses     []domain.Expense
	Drivers      []domain.Driver
	Tours        []domain.Tour
	TaxiLogs     []domain.TaxiLog
	Categories   []domain.Category
}

func (st *State) VehicleByID(id string) (domain.Vehicle, bool) {
	for _, v := range st.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vehicle{}, false
}

func (st *State) ReservationByID(id string) (domain.Reservation, bool) {
	for _, r := range st.Reservations {
		if r.ID == id {
			return cloneReservation(r), true
		}
	}
	return domain.Reservation{}, false
}

func (st *State) DriverByID(id string) (domain.Driver, bool) {
	for _, d := range st.Drivers {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Driver{}, false
}

func (st *State) TourByID(id string) (domain.Tour, bool) {
	for _, t := range st.Tours {
		if t.ID == id {
			return cloneTour(t), true
		}
	}
	return domain.Tour{}, false
}

func (st *State) UpsertVehicle(v domain.Vehicle) {
	for i := range st.Vehicles {
		if st.Vehicles[i].ID == v.ID {
			st.Vehicles[i] = v
			return
		}
	}
	st.Vehicles = append(st.Vehicles, v)
}

func (st *State) RemoveVehicle(id string) bool {
	for i := range st.Vehicles {
		if st.Vehicles[i].ID == id {
			st.Vehicles = append(st.Vehicles[:i], st.Vehicles[i+1:]...)
			return true
		}
	}
	return false
}

func (st *State) InsertReservation(r domain.Reservation) {
	st.Reservations = append(st.Reservations, cloneReservation(r))
}

func (st *State) UpdateReservation(r domain.Reservation) bool {
	for i := range st.Reservations {
		if st.Reservations[i].ID == r.ID {
			st.Reservations[i] = cloneReservation(r)
			return true
		}
	}
	return false
}

func (st *State) InsertExpense(e domain.Expense) {
	st.Expenses = append(st.Expenses, e)
}

func (st *State) RemoveExpense(id string) bool {
	for i := range st.Expenses {
		if st.Expenses[i].ID == id {
			st.Expenses = append(st.Expenses[:i], st.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

func (st *State) UpsertDriver(d domain.Driver) {
	for i := range st.Drivers {
		if st.Drivers[i].ID == d.ID {
			st.Drivers[i] = d
			return
		}
	}
	st.Drivers = append(st.Drivers, d)
}

func (st *State) UpsertTour(t domain.Tour) {
	for i := range st.Tours {
		if st.Tours[i].ID == t.ID {
			st.Tours[i] = cloneTour(t)
			return
		}
	}
	st.Tours = append(st.Tours, cloneTour(t))
}

func (st *State) InsertTaxiLog(l domain.TaxiLog) {
	st.TaxiLogs = append(st.TaxiLogs, l)
}

// Clone returns a deep copy safe to hand outside the store's lock.
func (st State) Clone() State {
	out := State{
		Vehicles:   append([]domain.Vehicle(nil), st.Vehicles...),
		Expenses:   append([]domain.Expense(nil), st.Expenses...),
		Drivers:    append([]domain.Driver(nil), st.Drivers...),
		TaxiLogs:   append([]domain.TaxiLog(nil), st.TaxiLogs...),
		Categories: append([]domain.Category(nil), st.Categories...),
	}
	out.Reservations = make([]domain.Reservation, 0, len(st.Reservations))
	for _, r := range st.Reservations {
		out.Reservations = append(out.Reservations, cloneReservation(r))
	}
	out.Tours = make([]domain.Tour, 0, len(st.Tours))
	for _, t := range st.Tours {
		out.Tours = append(out.Tours, cloneTour(t))
	}
	return out
}

func cloneReservation(r domain.Reservation) domain.Reservation {
	c := r
	if r.Vehicle != nil {
		vb := *r.Vehicle
		c.Vehicle = &vb
	}
	if r.Tour != nil {
		tb := *r.Tour
		c.Tour = &tb
	}
	if r.CancelledAt != nil {
		at := *r.CancelledAt
		c.CancelledAt = &at
	}
	return c
}

func cloneTour(t domain.Tour) domain.Tour {
	c := t
	c.Features = append([]string(nil), t.Features...)
	return c
}
