package store

import (
	"fmt"

	"gorm.io/gorm"
)

// GormPersister snapshots the whole state into relational tables and
// loads it back at startup. Writes replace every table inside one
// transaction, which keeps the snapshot consistent even though the
// in-memory state has already moved on by the time it runs.
type GormPersister struct {
	db *gorm.DB
}

func NewGormPersister(db *gorm.DB) (*GormPersister, error) {
	err := db.AutoMigrate(
		&vehicleRow{},
		&reservationRow{},
		&expenseRow{},
		&driverRow{},
		&tourRow{},
		&taxiLogRow{},
		&categoryRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate snapshot tables: %w", err)
	}
	return &GormPersister{db: db}, nil
}

// Load reads the last persisted snapshot. An empty database yields an
// empty state, not an error.
func (p *GormPersister) Load() (State, error) {
	var st State

	var vehicles []vehicleRow
	if err := p.db.Find(&vehicles).Error; err != nil {
		return State{}, err
	}
	for _, m := range vehicles {
		st.Vehicles = append(st.Vehicles, toDomainVehicle(m))
	}

	var reservations []reservationRow
	if err := p.db.Find(&reservations).Error; err != nil {
		return State{}, err
	}
	for _, m := range reservations {
		st.Reservations = append(st.Reservations, toDomainReservation(m))
	}

	var expenses []expenseRow
	if err := p.db.Find(&expenses).Error; err != nil {
		return State{}, err
	}
	for _, m := range expenses {
		st.Expenses = append(st.Expenses, toDomainExpense(m))
	}

	var drivers []driverRow
	if err := p.db.Find(&drivers).Error; err != nil {
		return State{}, err
	}
	for _, m := range drivers {
		st.Drivers = append(st.Drivers, toDomainDriver(m))
	}

	var tours []tourRow
	if err := p.db.Find(&tours).Error; err != nil {
		return State{}, err
	}
	for _, m := range tours {
		st.Tours = append(st.Tours, toDomainTour(m))
	}

	var logs []taxiLogRow
	if err := p.db.Find(&logs).Error; err != nil {
		return State{}, err
	}
	for _, m := range logs {
		st.TaxiLogs = append(st.TaxiLogs, toDomainTaxiLog(m))
	}

	var categories []categoryRow
	if err := p.db.Find(&categories).Error; err != nil {
		return State{}, err
	}
	for _, m := range categories {
		st.Categories = append(st.Categories, toDomainCategory(m))
	}

	return st, nil
}

func (p *GormPersister) Persist(st State) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		if err := replaceTable(tx, &vehicleRow{}, mapRows(st.Vehicles, toVehicleRow)); err != nil {
			return err
		}
		if err := replaceTable(tx, &reservationRow{}, mapRows(st.Reservations, toReservationRow)); err != nil {
			return err
		}
		if err := replaceTable(tx, &expenseRow{}, mapRows(st.Expenses, toExpenseRow)); err != nil {
			return err
		}
		if err := replaceTable(tx, &driverRow{}, mapRows(st.Drivers, toDriverRow)); err != nil {
			return err
		}
		if err := replaceTable(tx, &tourRow{}, mapRows(st.Tours, toTourRow)); err != nil {
			return err
		}
		if err := replaceTable(tx, &taxiLogRow{}, mapRows(st.TaxiLogs, toTaxiLogRow)); err != nil {
			return err
		}
		return replaceTable(tx, &categoryRow{}, mapRows(st.Categories, toCategoryRow))
	})
}

func replaceTable[R any](tx *gorm.DB, model *R, rows []R) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, 200).Error
}

func mapRows[D, R any](in []D, convert func(D) R) []R {
	out := make([]R, 0, len(in))
	for _, d := range in {
		out = append(out, convert(d))
	}
	return out
}
