package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodVinti4 PaymentMethod = "vinti4"
	MethodCard   PaymentMethod = "card"
	MethodStripe PaymentMethod = "stripe"
	MethodPaypal PaymentMethod = "paypal"
)

type ReservationKind string

const (
	KindVehicle ReservationKind = "vehicle"
	KindTour    ReservationKind = "tour"
)

type PickupType string

const (
	PickupOffice   PickupType = "office"
	PickupDelivery PickupType = "delivery"
)

type Extras struct {
	GPS       bool `json:"gps"`
	ChildSeat bool `json:"child_seat"`
	Insurance bool `json:"insurance"`
}

type Pickup struct {
	Type         PickupType `json:"type"`
	Location     string     `json:"location,omitempty"`
	Address      string     `json:"address,omitempty"`
	FlightNumber string     `json:"flight_number,omitempty"`
}

// VehicleBooking is the payload present only on Kind == vehicle reservations.
type VehicleBooking struct {
	VehicleID string    `json:"vehicle_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Extras    Extras    `json:"extras"`
	Pickup    Pickup    `json:"pickup"`
}

// TourBooking is the payload present only on Kind == tour reservations.
type TourBooking struct {
	TourID     string    `json:"tour_id"`
	Date       time.Time `json:"date"`
	Passengers int       `json:"passengers"`
}

type Reservation struct {
	ID         string          `json:"id"`
	Kind       ReservationKind `json:"kind"`
	CustomerID string          `json:"customer_id"`

	Vehicle *VehicleBooking `json:"vehicle,omitempty"`
	Tour    *TourBooking    `json:"tour,omitempty"`

	Status        ReservationStatus `json:"status"`
	Total         int64             `json:"total"`
	Discount      int64             `json:"discount"`
	PaidAmount    int64             `json:"paid_amount"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// Terminal reports whether the reservation can no longer change status.
func (r Reservation) Terminal() bool {
	return r.Status == ReservationCompleted || r.Status == ReservationCancelled
}
