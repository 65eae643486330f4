package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetbook/internal/domain"
	"fleetbook/internal/store"
)

// fakeStore runs commits against an in-memory state, like the real
// store but without locking or persistence.
type fakeStore struct {
	st      store.State
	commits int
}

func (f *fakeStore) VehicleByID(id string) (domain.Vehicle, bool) { return f.st.VehicleByID(id) }
func (f *fakeStore) TourByID(id string) (domain.Tour, bool)       { return f.st.TourByID(id) }
func (f *fakeStore) ReservationByID(id string) (domain.Reservation, bool) {
	return f.st.ReservationByID(id)
}
func (f *fakeStore) Reservations() []domain.Reservation { return f.st.Reservations }
func (f *fakeStore) Drivers() []domain.Driver           { return f.st.Drivers }
func (f *fakeStore) Commit(fn func(st *store.State) error, touched ...string) error {
	f.commits++
	return fn(&f.st)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService(st store.State) (*Service, *fakeStore) {
	fs := &fakeStore{st: st}
	svc := NewService(fs)
	svc.now = func() time.Time { return date("2024-05-01") }
	seq := 0
	svc.newID = func() string {
		seq++
		return []string{"id-1", "id-2", "id-3", "id-4"}[seq-1]
	}
	return svc, fs
}

func testVehicle() domain.Vehicle {
	return domain.Vehicle{
		ID:          "v1",
		Make:        "Hyundai",
		Model:       "i10",
		PricePerDay: 5000,
		Status:      domain.VehicleAvailable,
		Available:   true,
		Usage:       domain.UsageRental,
	}
}

func TestCreateVehicle_Success(t *testing.T) {
	svc, fs := newTestService(store.State{Vehicles: []domain.Vehicle{testVehicle()}})

	r, err := svc.CreateVehicle(CreateVehicleInput{
		CustomerID:    "c1",
		VehicleID:     "v1",
		Start:         date("2024-06-01"),
		End:           date("2024-06-11"),
		Extras:        domain.Extras{GPS: true, Insurance: true},
		Pickup:        domain.Pickup{Type: domain.PickupOffice},
		PaymentMethod: domain.MethodCard,
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", r.ID)
	assert.Equal(t, domain.KindVehicle, r.Kind)
	assert.Equal(t, domain.ReservationPending, r.Status)
	assert.Equal(t, domain.PaymentPending, r.PaymentStatus)
	assert.Equal(t, int64(75000), r.Total)
	assert.Equal(t, int64(5000), r.Discount)
	assert.Equal(t, int64(11250), r.PaidAmount)
	require.NotNil(t, r.Vehicle)
	assert.Nil(t, r.Tour)
	assert.Len(t, fs.st.Reservations, 1)
	// not paid yet, so no gateway fee was booked
	assert.Empty(t, fs.st.Expenses)
}

func TestCreateVehicle_InvalidDateRange(t *testing.T) {
	svc, fs := newTestService(store.State{Vehicles: []domain.Vehicle{testVehicle()}})

	_, err := svc.CreateVehicle(CreateVehicleInput{
		CustomerID: "c1",
		VehicleID:  "v1",
		Start:      date("2024-06-11"),
		End:        date("2024-06-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.CreateVehicle(CreateVehicleInput{
		CustomerID: "c1",
		VehicleID:  "v1",
		Start:      date("2024-06-01"),
		End:        date("2024-06-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	assert.Empty(t, fs.st.Reservations)
	assert.Zero(t, fs.commits)
}

func TestCreateVehicle_Unavailable(t *testing.T) {
	st := store.State{
		Vehicles: []domain.Vehicle{testVehicle()},
		Reservations: []domain.Reservation{{
			ID:     "existing",
			Kind:   domain.KindVehicle,
			Status: domain.ReservationConfirmed,
			Vehicle: &domain.VehicleBooking{
				VehicleID: "v1",
				StartDate: date("2024-06-05"),
				EndDate:   date("2024-06-10"),
			},
		}},
	}
	svc, fs := newTestService(st)

	_, err := svc.CreateVehicle(CreateVehicleInput{
		CustomerID: "c1",
		VehicleID:  "v1",
		Start:      date("2024-06-08"),
		End:        date("2024-06-12"),
	})

	assert.ErrorIs(t, err, ErrVehicleUnavailable)
	assert.Len(t, fs.st.Reservations, 1)
}

func TestCreateVehicle_UnknownVehicle(t *testing.T) {
	svc, _ := newTestService(store.State{})

	_, err := svc.CreateVehicle(CreateVehicleInput{
		CustomerID: "c1",
		VehicleID:  "ghost",
		Start:      date("2024-06-01"),
		End:        date("2024-06-02"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVehicle_PaidCardBooksGatewayFee(t *testing.T) {
	svc, fs := newTestService(store.State{Vehicles: []domain.Vehicle{testVehicle()}})

	r, err := svc.CreateVehicle(CreateVehicleInput{
		CustomerID:    "c1",
		VehicleID:     "v1",
		Start:         date("2024-06-01"),
		End:           date("2024-06-11"),
		Extras:        domain.Extras{GPS: true, Insurance: true},
		Pickup:        domain.Pickup{Type: domain.PickupOffice},
		PaymentMethod: domain.MethodCard,
		Paid:          true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, r.PaymentStatus)
	assert.Equal(t, int64(11250), r.PaidAmount)

	// fee on the deposit, not the full total: round(11250 * 2.5%) = 281
	require.Len(t, fs.st.Expenses, 1)
	assert.Equal(t, int64(281), fs.st.Expenses[0].Amount)
	assert.Equal(t, domain.ExpenseOther, fs.st.Expenses[0].Category)
}

func TestCreateVehicle_PaidCashSkipsFee(t *testing.T) {
	svc, fs := newTestService(store.State{Vehicles: []domain.Vehicle{testVehicle()}})

	_, err := svc.CreateVehicle(CreateVehicleInput{
		CustomerID:    "c1",
		VehicleID:     "v1",
		Start:         date("2024-06-01"),
		End:           date("2024-06-03"),
		PaymentMethod: domain.MethodCash,
		Paid:          true,
	})

	require.NoError(t, err)
	assert.Empty(t, fs.st.Expenses)
}

func TestCreateTour_CapacityEnforcedPerDate(t *testing.T) {
	st := store.State{
		Tours: []domain.Tour{{ID: "t1", Title: "Island Highlights", PricePerPerson: 6000, Capacity: 4}},
		Reservations: []domain.Reservation{{
			ID:     "existing",
			Kind:   domain.KindTour,
			Status: domain.ReservationConfirmed,
			Tour:   &domain.TourBooking{TourID: "t1", Date: date("2024-05-01"), Passengers: 3},
		}},
	}
	svc, fs := newTestService(st)

	_, err := svc.CreateTour(CreateTourInput{
		CustomerID: "c1",
		TourID:     "t1",
		Date:       date("2024-05-01"),
		Passengers: 2,
	})
	assert.ErrorIs(t, err, ErrTourCapacityExceeded)
	assert.Len(t, fs.st.Reservations, 1)

	r, err := svc.CreateTour(CreateTourInput{
		CustomerID: "c1",
		TourID:     "t1",
		Date:       date("2024-05-01"),
		Passengers: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6000), r.Total)
	assert.Len(t, fs.st.Reservations, 2)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(domain.ReservationPending, domain.ReservationConfirmed))
	assert.True(t, CanTransition(domain.ReservationConfirmed, domain.ReservationActive))
	assert.True(t, CanTransition(domain.ReservationActive, domain.ReservationCompleted))
	assert.True(t, CanTransition(domain.ReservationPending, domain.ReservationCancelled))
	assert.True(t, CanTransition(domain.ReservationActive, domain.ReservationCancelled))

	assert.False(t, CanTransition(domain.ReservationPending, domain.ReservationActive))
	assert.False(t, CanTransition(domain.ReservationCompleted, domain.ReservationCancelled))
	assert.False(t, CanTransition(domain.ReservationCancelled, domain.ReservationCancelled))
	assert.False(t, CanTransition(domain.ReservationConfirmed, domain.ReservationConfirmed))
}

func activeFixture() store.State {
	return store.State{
		Vehicles: []domain.Vehicle{testVehicle()},
		Reservations: []domain.Reservation{{
			ID:            "r1",
			Kind:          domain.KindVehicle,
			Status:        domain.ReservationConfirmed,
			Total:         75000,
			PaidAmount:    11250,
			PaymentStatus: domain.PaymentPaid,
			PaymentMethod: domain.MethodCard,
			Vehicle: &domain.VehicleBooking{
				VehicleID: "v1",
				StartDate: date("2024-04-25"),
				EndDate:   date("2024-05-01"),
			},
		}},
	}
}

func TestTransition_ActivateSettlesBalanceAndRentsVehicle(t *testing.T) {
	svc, fs := newTestService(activeFixture())

	r, err := svc.Transition("r1", domain.ReservationActive)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationActive, r.Status)
	// balance collected at pickup
	assert.Equal(t, int64(75000), r.PaidAmount)

	v, _ := fs.st.VehicleByID("v1")
	assert.Equal(t, domain.VehicleRented, v.Status)
	assert.False(t, v.Available)
}

func TestTransition_CompleteFreesVehicle(t *testing.T) {
	st := activeFixture()
	st.Reservations[0].Status = domain.ReservationActive
	st.Vehicles[0].Status = domain.VehicleRented
	st.Vehicles[0].Available = false
	svc, fs := newTestService(st)

	r, err := svc.Transition("r1", domain.ReservationCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCompleted, r.Status)

	v, _ := fs.st.VehicleByID("v1")
	assert.Equal(t, domain.VehicleAvailable, v.Status)
	assert.True(t, v.Available)
}

func TestTransition_CancelPaidRefundsExactlyOnce(t *testing.T) {
	svc, fs := newTestService(activeFixture())

	r, err := svc.Transition("r1", domain.ReservationCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, r.Status)
	assert.Equal(t, domain.PaymentRefunded, r.PaymentStatus)
	require.NotNil(t, r.CancelledAt)

	require.Len(t, fs.st.Expenses, 1)
	assert.Equal(t, int64(11250), fs.st.Expenses[0].Amount)
	assert.Equal(t, domain.ExpenseOther, fs.st.Expenses[0].Category)

	// re-cancelling is rejected and books nothing further
	_, err = svc.Transition("r1", domain.ReservationCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, fs.st.Expenses, 1)
}

func TestTransition_CancelUnpaidBooksNoRefund(t *testing.T) {
	st := activeFixture()
	st.Reservations[0].Status = domain.ReservationPending
	st.Reservations[0].PaymentStatus = domain.PaymentPending
	svc, fs := newTestService(st)

	r, err := svc.Transition("r1", domain.ReservationCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, r.PaymentStatus)
	assert.Empty(t, fs.st.Expenses)

	// freeing the vehicle is unconditional, even from pending
	v, _ := fs.st.VehicleByID("v1")
	assert.Equal(t, domain.VehicleAvailable, v.Status)
	assert.True(t, v.Available)
}

func TestTransition_InvalidTarget(t *testing.T) {
	svc, fs := newTestService(activeFixture())

	_, err := svc.Transition("r1", domain.ReservationCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	r, _ := fs.st.ReservationByID("r1")
	assert.Equal(t, domain.ReservationConfirmed, r.Status)
}

func TestTransition_UnknownReservation(t *testing.T) {
	svc, _ := newTestService(store.State{})

	_, err := svc.Transition("ghost", domain.ReservationCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectDisplayStatus(t *testing.T) {
	today := date("2024-05-01")

	maintenance := domain.Vehicle{ID: "v1", Status: domain.VehicleMaintenance}
	assert.Equal(t, domain.VehicleMaintenance, ProjectDisplayStatus(maintenance, nil, today))

	v := domain.Vehicle{ID: "v1", Status: domain.VehicleAvailable}

	rented := []domain.Reservation{{
		Kind:    domain.KindVehicle,
		Status:  domain.ReservationActive,
		Vehicle: &domain.VehicleBooking{VehicleID: "v1", StartDate: date("2024-04-28"), EndDate: date("2024-05-03")},
	}}
	assert.Equal(t, domain.VehicleRented, ProjectDisplayStatus(v, rented, today))

	cleaning := []domain.Reservation{{
		Kind:    domain.KindVehicle,
		Status:  domain.ReservationCompleted,
		Vehicle: &domain.VehicleBooking{VehicleID: "v1", StartDate: date("2024-04-28"), EndDate: date("2024-05-01")},
	}}
	assert.Equal(t, domain.VehicleCleaning, ProjectDisplayStatus(v, cleaning, today))

	endedEarlier := []domain.Reservation{{
		Kind:    domain.KindVehicle,
		Status:  domain.ReservationCompleted,
		Vehicle: &domain.VehicleBooking{VehicleID: "v1", StartDate: date("2024-04-20"), EndDate: date("2024-04-25")},
	}}
	assert.Equal(t, domain.VehicleAvailable, ProjectDisplayStatus(v, endedEarlier, today))
}
