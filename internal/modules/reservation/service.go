package reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetbook/internal/domain"
	"fleetbook/internal/modules/availability"
	"fleetbook/internal/modules/pricing"
	"fleetbook/internal/store"
)

// allowedTransitions is the reservation state machine. Cancelled is
// reachable from every non-terminal state; completed and cancelled are
// terminal, so re-cancelling an already cancelled reservation is rejected.
var allowedTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationPending:   {domain.ReservationConfirmed, domain.ReservationCancelled},
	domain.ReservationConfirmed: {domain.ReservationActive, domain.ReservationCancelled},
	domain.ReservationActive:    {domain.ReservationCompleted, domain.ReservationCancelled},
	domain.ReservationCompleted: {},
	domain.ReservationCancelled: {},
}

// CanTransition reports whether from -> to is an allowed status change.
func CanTransition(from, to domain.ReservationStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
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

// CreateVehicleInput carries everything the booking flow collects before
// handing off to the lifecycle manager. Paid marks the deposit (or full
// amount, with PayInFull) as already collected by the simulated gateway.
type CreateVehicleInput struct {
	CustomerID    string
	VehicleID     string
	Start, End    time.Time
	Extras        domain.Extras
	Pickup        domain.Pickup
	PaymentMethod domain.PaymentMethod
	Paid          bool
	PayInFull     bool
}

type CreateTourInput struct {
	CustomerID    string
	TourID        string
	Date          time.Time
	Passengers    int
	PaymentMethod domain.PaymentMethod
	Paid          bool
	PayInFull     bool
}

// CreateVehicle books a vehicle. Validation, pricing and the insert run
// inside one store commit so a concurrent booking cannot slip between the
// availability check and the write.
func (s *Service) CreateVehicle(in CreateVehicleInput) (*domain.Reservation, error) {
	if in.CustomerID == "" || in.VehicleID == "" {
		return nil, ErrValidation
	}
	if !in.End.After(in.Start) {
		return nil, ErrInvalidDateRange
	}

	var created domain.Reservation
	err := s.store.Commit(func(st *store.State) error {
		v, ok := st.VehicleByID(in.VehicleID)
		if !ok {
			return ErrNotFound
		}
		if !v.Rentable() {
			return ErrVehicleUnavailable
		}
		if !availability.VehicleAvailable(v, st.Drivers, st.Reservations, in.Start, in.End) {
			return ErrVehicleUnavailable
		}

		quote := pricing.QuoteVehicle(v, in.Start, in.End, in.Extras, in.Pickup)
		now := s.now()
		r := domain.Reservation{
			ID:         s.newID(),
			Kind:       domain.KindVehicle,
			CustomerID: in.CustomerID,
			Vehicle: &domain.VehicleBooking{
				VehicleID: in.VehicleID,
				StartDate: in.Start,
				EndDate:   in.End,
				Extras:    in.Extras,
				Pickup:    in.Pickup,
			},
			Status:        domain.ReservationPending,
			Total:         quote.Total,
			Discount:      quote.Discount,
			PaymentMethod: in.PaymentMethod,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		s.applyPayment(&r, in.Paid, in.PayInFull)

		st.InsertReservation(r)
		s.recordGatewayFee(st, r)
		created = r
		return nil
	}, "reservations", "expenses")
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateTour books seats on a tour for one date, enforcing the capacity
// ceiling against everything already booked for that exact date.
func (s *Service) CreateTour(in CreateTourInput) (*domain.Reservation, error) {
	if in.CustomerID == "" || in.TourID == "" || in.Passengers < 1 {
		return nil, ErrValidation
	}

	var created domain.Reservation
	err := s.store.Commit(func(st *store.State) error {
		t, ok := st.TourByID(in.TourID)
		if !ok {
			return ErrNotFound
		}
		remaining := availability.RemainingTourCapacity(t, st.Reservations, in.Date)
		if in.Passengers > remaining {
			return ErrTourCapacityExceeded
		}

		now := s.now()
		r := domain.Reservation{
			ID:         s.newID(),
			Kind:       domain.KindTour,
			CustomerID: in.CustomerID,
			Tour: &domain.TourBooking{
				TourID:     in.TourID,
				Date:       in.Date,
				Passengers: in.Passengers,
			},
			Status:        domain.ReservationPending,
			Total:         pricing.QuoteTour(t, in.Passengers),
			PaymentMethod: in.PaymentMethod,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		s.applyPayment(&r, in.Paid, in.PayInFull)

		st.InsertReservation(r)
		s.recordGatewayFee(st, r)
		created = r
		return nil
	}, "reservations", "expenses")
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// applyPayment fixes the deposit split. The total never changes after
// this point.
func (s *Service) applyPayment(r *domain.Reservation, paid, payInFull bool) {
	if payInFull {
		r.PaidAmount = r.Total
	} else {
		r.PaidAmount = pricing.Deposit(r.Total)
	}
	if paid {
		r.PaymentStatus = domain.PaymentPaid
	} else {
		r.PaymentStatus = domain.PaymentPending
	}
}

// recordGatewayFee books the fee the company absorbs when a reservation
// arrives already paid through a fee-bearing method. The fee applies to
// the amount actually paid at creation, not the full total.
func (s *Service) recordGatewayFee(st *store.State, r domain.Reservation) {
	if r.PaymentStatus != domain.PaymentPaid {
		return
	}
	fee := pricing.TransactionFee(r.PaidAmount, r.PaymentMethod)
	if fee == 0 {
		return
	}
	now := s.now()
	st.InsertExpense(domain.Expense{
		ID:          s.newID(),
		Description: fmt.Sprintf("Transaction fee (%s) for reservation %s", r.PaymentMethod, r.ID),
		Amount:      fee,
		Category:    domain.ExpenseOther,
		Date:        now,
		CreatedAt:   now,
	})
}

// Transition moves a reservation to the target status and applies the
// vehicle and ledger side effects. All-or-nothing: an invalid target
// leaves every entity untouched.
func (s *Service) Transition(id string, target domain.ReservationStatus) (*domain.Reservation, error) {
	var updated domain.Reservation
	err := s.store.Commit(func(st *store.State) error {
		r, ok := st.ReservationByID(id)
		if !ok {
			return ErrNotFound
		}
		if !CanTransition(r.Status, target) {
			return ErrInvalidTransition
		}

		now := s.now()
		switch target {
		case domain.ReservationActive:
			// The balance is collected at pickup, so activating a paid
			// reservation settles it in full.
			if r.PaymentStatus == domain.PaymentPaid && r.PaidAmount < r.Total {
				r.PaidAmount = r.Total
			}
			s.setVehicleState(st, r, domain.VehicleRented, false, now)

		case domain.ReservationCompleted:
			s.setVehicleState(st, r, domain.VehicleAvailable, true, now)

		case domain.ReservationCancelled:
			// Freeing the vehicle is unconditional and idempotent, even
			// when the reservation never reached active.
			s.setVehicleState(st, r, domain.VehicleAvailable, true, now)
			r.CancelledAt = &now
			if r.PaymentStatus == domain.PaymentPaid && r.PaidAmount > 0 {
				st.InsertExpense(domain.Expense{
					ID:          s.newID(),
					Description: fmt.Sprintf("Refund for cancelled reservation %s", r.ID),
					Amount:      r.PaidAmount,
					Category:    domain.ExpenseOther,
					Date:        now,
					CreatedAt:   now,
				})
				r.PaymentStatus = domain.PaymentRefunded
			}
		}

		r.Status = target
		r.UpdatedAt = now
		st.UpdateReservation(r)
		updated = r
		return nil
	}, "reservations", "vehicles", "expenses")
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) setVehicleState(st *store.State, r domain.Reservation, status domain.VehicleStatus, available bool, now time.Time) {
	if r.Kind != domain.KindVehicle || r.Vehicle == nil {
		return
	}
	v, ok := st.VehicleByID(r.Vehicle.VehicleID)
	if !ok {
		return
	}
	v.Status = status
	v.Available = available
	v.UpdatedAt = now
	st.UpsertVehicle(v)
}

// GetByID returns a reservation.
func (s *Service) GetByID(id string) (*domain.Reservation, error) {
	r, ok := s.store.ReservationByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

// List returns every reservation, newest first.
func (s *Service) List() []domain.Reservation {
	out := s.store.Reservations()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// QuoteVehicle prices a prospective rental without touching state.
func (s *Service) QuoteVehicle(vehicleID string, start, end time.Time, extras domain.Extras, pickup domain.Pickup) (*pricing.Quote, error) {
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}
	v, ok := s.store.VehicleByID(vehicleID)
	if !ok {
		return nil, ErrNotFound
	}
	q := pricing.QuoteVehicle(v, start, end, extras, pickup)
	return &q, nil
}

// QuoteTour prices a prospective tour booking.
func (s *Service) QuoteTour(tourID string, passengers int) (int64, error) {
	if passengers < 1 {
		return 0, ErrValidation
	}
	t, ok := s.store.TourByID(tourID)
	if !ok {
		return 0, ErrNotFound
	}
	return pricing.QuoteTour(t, passengers), nil
}

// ProjectDisplayStatus derives the status the UI shows for a vehicle.
// It never writes back: the stored status stays the source of truth.
// Precedence: stored maintenance, then rented while any reservation is
// active, then cleaning on the day a reservation completed, then the
// stored status.
func ProjectDisplayStatus(v domain.Vehicle, reservations []domain.Reservation, today time.Time) domain.VehicleStatus {
	if v.Status == domain.VehicleMaintenance {
		return domain.VehicleMaintenance
	}
	for _, r := range reservations {
		if r.Kind != domain.KindVehicle || r.Vehicle == nil || r.Vehicle.VehicleID != v.ID {
			continue
		}
		if r.Status == domain.ReservationActive {
			return domain.VehicleRented
		}
	}
	for _, r := range reservations {
		if r.Kind != domain.KindVehicle || r.Vehicle == nil || r.Vehicle.VehicleID != v.ID {
			continue
		}
		if r.Status == domain.ReservationCompleted && sameDay(r.Vehicle.EndDate, today) {
			return domain.VehicleCleaning
		}
	}
	return v.Status
}

// DisplayStatus is the service wrapper over ProjectDisplayStatus using
// the injected clock.
func (s *Service) DisplayStatus(v domain.Vehicle) domain.VehicleStatus {
	return ProjectDisplayStatus(v, s.store.Reservations(), s.now())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
