package taxi

import (
	"time"

	"github.com/google/uuid"

	"fleetbook/internal/domain"
	"fleetbook/internal/store"
)

type Store interface {
	Drivers() []domain.Driver
	DriverByID(id string) (domain.Driver, bool)
	TaxiLogs() []domain.TaxiLog
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

func (s *Service) Drivers() []domain.Driver {
	return s.store.Drivers()
}

// UpsertDriver creates or updates a driver. Assigning a vehicle here is
// what removes it from rental availability while the driver is on duty.
func (s *Service) UpsertDriver(d domain.Driver) (*domain.Driver, error) {
	if d.Name == "" {
		return nil, ErrValidation
	}
	if d.Status == "" {
		d.Status = domain.DriverAvailable
	}

	now := s.now()
	err := s.store.Commit(func(st *store.State) error {
		if d.ID == "" {
			d.ID = s.newID()
			d.CreatedAt = now
		} else {
			existing, ok := st.DriverByID(d.ID)
			if !ok {
				return ErrNotFound
			}
			d.CreatedAt = existing.CreatedAt
		}
		if d.CurrentVehicleID != "" {
			if _, ok := st.VehicleByID(d.CurrentVehicleID); !ok {
				return ErrValidation
			}
		}
		d.UpdatedAt = now
		st.UpsertDriver(d)
		return nil
	}, "drivers")
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Settlements lists logs, optionally narrowed to one driver.
func (s *Service) Settlements(driverID string) []domain.TaxiLog {
	logs := s.store.TaxiLogs()
	if driverID == "" {
		return logs
	}
	out := make([]domain.TaxiLog, 0, len(logs))
	for _, l := range logs {
		if l.DriverID == driverID {
			out = append(out, l)
		}
	}
	return out
}

// RecordSettlement books a driver's daily cash hand-in. At most one
// settlement may exist per driver per calendar date; the check and the
// insert share one commit so two simultaneous hand-ins cannot both pass.
func (s *Service) RecordSettlement(driverID string, date time.Time, amount int64, notes string) (*domain.TaxiLog, error) {
	if driverID == "" || amount < 0 {
		return nil, ErrValidation
	}

	var created domain.TaxiLog
	err := s.store.Commit(func(st *store.State) error {
		if _, ok := st.DriverByID(driverID); !ok {
			return ErrNotFound
		}
		for _, l := range st.TaxiLogs {
			if l.DriverID == driverID && sameDay(l.Date, date) {
				return ErrDuplicateSettlement
			}
		}
		created = domain.TaxiLog{
			ID:        s.newID(),
			DriverID:  driverID,
			Date:      date,
			Amount:    amount,
			Notes:     notes,
			CreatedAt: s.now(),
		}
		st.InsertTaxiLog(created)
		return nil
	}, "taxi_logs")
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
