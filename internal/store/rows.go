package store

import (
	"encoding/json"
	"time"

	"fleetbook/internal/domain"
)

// Row types mirror the domain entities into flat snapshot tables.
// Reservation payloads are flattened; the kind column decides which
// half of the columns is meaningful.

type vehicleRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Make         string    `gorm:"column:make"`
	Model        string    `gorm:"column:model"`
	Year         int       `gorm:"column:year"`
	Category     string    `gorm:"column:category"`
	Transmission string    `gorm:"column:transmission"`
	Seats        int       `gorm:"column:seats"`
	PricePerDay  int64     `gorm:"column:price_per_day"`
	Status       string    `gorm:"column:status"`
	Available    bool      `gorm:"column:available"`
	Usage        string    `gorm:"column:usage"`
	Rating       float64   `gorm:"column:rating"`
	ReviewCount  int       `gorm:"column:review_count"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (vehicleRow) TableName() string { return "vehicles" }

type reservationRow struct {
	ID         string `gorm:"column:id;primaryKey"`
	Kind       string `gorm:"column:kind"`
	CustomerID string `gorm:"column:customer_id"`

	VehicleID      *string    `gorm:"column:vehicle_id"`
	StartDate      *time.Time `gorm:"column:start_date"`
	EndDate        *time.Time `gorm:"column:end_date"`
	GPS            bool       `gorm:"column:gps"`
	ChildSeat      bool       `gorm:"column:child_seat"`
	Insurance      bool       `gorm:"column:insurance"`
	PickupType     string     `gorm:"column:pickup_type"`
	PickupLocation string     `gorm:"column:pickup_location"`
	PickupAddress  string     `gorm:"column:pickup_address"`
	FlightNumber   string     `gorm:"column:flight_number"`

	TourID     *string    `gorm:"column:tour_id"`
	TourDate   *time.Time `gorm:"column:tour_date"`
	Passengers int        `gorm:"column:passengers"`

	Status        string     `gorm:"column:status"`
	Total         int64      `gorm:"column:total"`
	Discount      int64      `gorm:"column:discount"`
	PaidAmount    int64      `gorm:"column:paid_amount"`
	PaymentStatus string     `gorm:"column:payment_status"`
	PaymentMethod string     `gorm:"column:payment_method"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (reservationRow) TableName() string { return "reservations" }

type expenseRow struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Description string    `gorm:"column:description"`
	Amount      int64     `gorm:"column:amount"`
	Category    string    `gorm:"column:category"`
	Date        time.Time `gorm:"column:date"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (expenseRow) TableName() string { return "expenses" }

type driverRow struct {
	ID               string    `gorm:"column:id;primaryKey"`
	Name             string    `gorm:"column:name"`
	License          string    `gorm:"column:license"`
	Phone            string    `gorm:"column:phone"`
	Status           string    `gorm:"column:status"`
	CurrentVehicleID string    `gorm:"column:current_vehicle_id"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (driverRow) TableName() string { return "drivers" }

type tourRow struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Title          string    `gorm:"column:title"`
	Description    string    `gorm:"column:description"`
	PricePerPerson int64     `gorm:"column:price_per_person"`
	Capacity       int       `gorm:"column:capacity"`
	DurationHours  int       `gorm:"column:duration_hours"`
	Features       string    `gorm:"column:features;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (tourRow) TableName() string { return "tours" }

type taxiLogRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	DriverID  string    `gorm:"column:driver_id;index"`
	Date      time.Time `gorm:"column:date"`
	Amount    int64     `gorm:"column:amount"`
	Notes     string    `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (taxiLogRow) TableName() string { return "taxi_logs" }

type categoryRow struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
	Type string `gorm:"column:type"`
}

func (categoryRow) TableName() string { return "categories" }

func toVehicleRow(v domain.Vehicle) vehicleRow {
	return vehicleRow{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Category:     string(v.Category),
		Transmission: v.Transmission,
		Seats:        v.Seats,
		PricePerDay:  v.PricePerDay,
		Status:       string(v.Status),
		Available:    v.Available,
		Usage:        string(v.Usage),
		Rating:       v.Rating,
		ReviewCount:  v.ReviewCount,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toDomainVehicle(m vehicleRow) domain.Vehicle {
	return domain.Vehicle{
		ID:           m.ID,
		Make:         m.Make,
		Model:        m.Model,
		Year:         m.Year,
		Category:     domain.VehicleCategory(m.Category),
		Transmission: m.Transmission,
		Seats:        m.Seats,
		PricePerDay:  m.PricePerDay,
		Status:       domain.VehicleStatus(m.Status),
		Available:    m.Available,
		Usage:        domain.UsageType(m.Usage),
		Rating:       m.Rating,
		ReviewCount:  m.ReviewCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toReservationRow(r domain.Reservation) reservationRow {
	m := reservationRow{
		ID:            r.ID,
		Kind:          string(r.Kind),
		CustomerID:    r.CustomerID,
		Status:        string(r.Status),
		Total:         r.Total,
		Discount:      r.Discount,
		PaidAmount:    r.PaidAmount,
		PaymentStatus: string(r.PaymentStatus),
		PaymentMethod: string(r.PaymentMethod),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		CancelledAt:   r.CancelledAt,
	}
	if r.Vehicle != nil {
		vb := r.Vehicle
		m.VehicleID = &vb.VehicleID
		m.StartDate = &vb.StartDate
		m.EndDate = &vb.EndDate
		m.GPS = vb.Extras.GPS
		m.ChildSeat = vb.Extras.ChildSeat
		m.Insurance = vb.Extras.Insurance
		m.PickupType = string(vb.Pickup.Type)
		m.PickupLocation = vb.Pickup.Location
		m.PickupAddress = vb.Pickup.Address
		m.FlightNumber = vb.Pickup.FlightNumber
	}
	if r.Tour != nil {
		tb := r.Tour
		m.TourID = &tb.TourID
		m.TourDate = &tb.Date
		m.Passengers = tb.Passengers
	}
	return m
}

func toDomainReservation(m reservationRow) domain.Reservation {
	r := domain.Reservation{
		ID:            m.ID,
		Kind:          domain.ReservationKind(m.Kind),
		CustomerID:    m.CustomerID,
		Status:        domain.ReservationStatus(m.Status),
		Total:         m.Total,
		Discount:      m.Discount,
		PaidAmount:    m.PaidAmount,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
	if r.Kind == domain.KindVehicle && m.VehicleID != nil && m.StartDate != nil && m.EndDate != nil {
		r.Vehicle = &domain.VehicleBooking{
			VehicleID: *m.VehicleID,
			StartDate: *m.StartDate,
			EndDate:   *m.EndDate,
			Extras: domain.Extras{
				GPS:       m.GPS,
				ChildSeat: m.ChildSeat,
				Insurance: m.Insurance,
			},
			Pickup: domain.Pickup{
				Type:         domain.PickupType(m.PickupType),
				Location:     m.PickupLocation,
				Address:      m.PickupAddress,
				FlightNumber: m.FlightNumber,
			},
		}
	}
	if r.Kind == domain.KindTour && m.TourID != nil && m.TourDate != nil {
		r.Tour = &domain.TourBooking{
			TourID:     *m.TourID,
			Date:       *m.TourDate,
			Passengers: m.Passengers,
		}
	}
	return r
}

func toExpenseRow(e domain.Expense) expenseRow {
	return expenseRow{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

func toDomainExpense(m expenseRow) domain.Expense {
	return domain.Expense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

func toDriverRow(d domain.Driver) driverRow {
	return driverRow{
		ID:               d.ID,
		Name:             d.Name,
		License:          d.License,
		Phone:            d.Phone,
		Status:           string(d.Status),
		CurrentVehicleID: d.CurrentVehicleID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toDomainDriver(m driverRow) domain.Driver {
	return domain.Driver{
		ID:               m.ID,
		Name:             m.Name,
		License:          m.License,
		Phone:            m.Phone,
		Status:           domain.DriverStatus(m.Status),
		CurrentVehicleID: m.CurrentVehicleID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toTourRow(t domain.Tour) tourRow {
	features, _ := json.Marshal(t.Features)
	return tourRow{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		PricePerPerson: t.PricePerPerson,
		Capacity:       t.Capacity,
		DurationHours:  t.DurationHours,
		Features:       string(features),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toDomainTour(m tourRow) domain.Tour {
	var features []string
	if m.Features != "" {
		_ = json.Unmarshal([]byte(m.Features), &features)
	}
	return domain.Tour{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		PricePerPerson: m.PricePerPerson,
		Capacity:       m.Capacity,
		DurationHours:  m.DurationHours,
		Features:       features,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toTaxiLogRow(l domain.TaxiLog) taxiLogRow {
	return taxiLogRow{
		ID:        l.ID,
		DriverID:  l.DriverID,
		Date:      l.Date,
		Amount:    l.Amount,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}

func toDomainTaxiLog(m taxiLogRow) domain.TaxiLog {
	return domain.TaxiLog{
		ID:        m.ID,
		DriverID:  m.DriverID,
		Date:      m.Date,
		Amount:    m.Amount,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

func toCategoryRow(c domain.Category) categoryRow {
	return categoryRow{ID: c.ID, Name: c.Name, Type: string(c.Type)}
}

func toDomainCategory(m categoryRow) domain.Category {
	return domain.Category{ID: m.ID, Name: m.Name, Type: domain.CategoryType(m.Type)}
}
