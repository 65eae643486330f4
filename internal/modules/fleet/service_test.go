package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetbook/internal/domain"
	"fleetbook/internal/store"
)

type fakeStore struct {
	st store.State
}

func (f *fakeStore) Vehicles() []domain.Vehicle                 { return f.st.Vehicles }
func (f *fakeStore) VehicleByID(id string) (domain.Vehicle, bool) { return f.st.VehicleByID(id) }
func (f *fakeStore) Drivers() []domain.Driver                   { return f.st.Drivers }
func (f *fakeStore) Reservations() []domain.Reservation         { return f.st.Reservations }
func (f *fakeStore) Commit(fn func(st *store.State) error, touched ...string) error {
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
	svc.newID = func() string { return "v-new" }
	return svc, fs
}

func TestPublicFleet_HidesTaxiOnlyUnits(t *testing.T) {
	svc, _ := newTestService(store.State{
		Vehicles: []domain.Vehicle{
			{ID: "v1", Status: domain.VehicleAvailable, Usage: domain.UsageRental},
			{ID: "v2", Status: domain.VehicleAvailable, Usage: domain.UsageTaxi},
		},
	})

	out := svc.PublicFleet(time.Time{}, time.Time{})
	require.Len(t, out, 1)
	assert.Equal(t, "v1", out[0].ID)

	admin := svc.AdminFleet()
	assert.Len(t, admin, 2)
}

func TestGet_ProjectsDisplayStatus(t *testing.T) {
	svc, _ := newTestService(store.State{
		Vehicles: []domain.Vehicle{{ID: "v1", Status: domain.VehicleAvailable, Usage: domain.UsageRental}},
		Reservations: []domain.Reservation{{
			ID:     "r1",
			Kind:   domain.KindVehicle,
			Status: domain.ReservationActive,
			Vehicle: &domain.VehicleBooking{
				VehicleID: "v1",
				StartDate: date("2024-04-28"),
				EndDate:   date("2024-05-03"),
			},
		}},
	})

	v, err := svc.Get("v1")
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleAvailable, v.Status)
	assert.Equal(t, domain.VehicleRented, v.DisplayStatus)
}

func TestUpsert(t *testing.T) {
	svc, fs := newTestService(store.State{})

	v, err := svc.Upsert(domain.Vehicle{Make: "Hyundai", Model: "i10", PricePerDay: 3500})
	require.NoError(t, err)
	assert.Equal(t, "v-new", v.ID)
	assert.Equal(t, domain.VehicleAvailable, v.Status)
	assert.True(t, v.Available)
	assert.Equal(t, domain.UsageRental, v.Usage)
	assert.Len(t, fs.st.Vehicles, 1)

	_, err = svc.Upsert(domain.Vehicle{Model: "i10"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Upsert(domain.Vehicle{ID: "ghost", Make: "Dacia", Model: "Duster"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetMaintenance(t *testing.T) {
	svc, _ := newTestService(store.State{
		Vehicles: []domain.Vehicle{{ID: "v1", Status: domain.VehicleAvailable, Available: true}},
	})

	v, err := svc.SetMaintenance("v1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleMaintenance, v.Status)
	assert.False(t, v.Available)

	v, err = svc.SetMaintenance("v1", false)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleAvailable, v.Status)
	assert.True(t, v.Available)
}

func TestDelete_RefusedWhileReserved(t *testing.T) {
	st := store.State{
		Vehicles: []domain.Vehicle{{ID: "v1"}},
		Reservations: []domain.Reservation{{
			ID:      "r1",
			Kind:    domain.KindVehicle,
			Status:  domain.ReservationConfirmed,
			Vehicle: &domain.VehicleBooking{VehicleID: "v1"},
		}},
	}
	svc, fs := newTestService(st)

	err := svc.Delete("v1")
	assert.ErrorIs(t, err, ErrHasReservations)
	assert.Len(t, fs.st.Vehicles, 1)

	// terminal reservations no longer block deletion
	fs.st.Reservations[0].Status = domain.ReservationCancelled
	require.NoError(t, svc.Delete("v1"))
	assert.Empty(t, fs.st.Vehicles)

	assert.ErrorIs(t, svc.Delete("ghost"), ErrNotFound)
}
