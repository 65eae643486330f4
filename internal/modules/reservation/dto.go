package reservation

import "fleetbook/internal/domain"

type createReservationRequest struct {
	Kind       string `json:"kind" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`

	// vehicle bookings
	VehicleID string        `json:"vehicle_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Extras    domain.Extras `json:"extras"`
	Pickup    domain.Pickup `json:"pickup"`

	// tour bookings
	TourID     string `json:"tour_id"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers"`

	PaymentMethod string `json:"payment_method"`
	Paid          bool   `json:"paid"`
	PayInFull     bool   `json:"pay_in_full"`
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type quoteRequest struct {
	Kind string `json:"kind" binding:"required"`

	VehicleID string        `json:"vehicle_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Extras    domain.Extras `json:"extras"`
	Pickup    domain.Pickup `json:"pickup"`

	TourID     string `json:"tour_id"`
	Passengers int    `json:"passengers"`
}

type quoteResponse struct {
	Days         int   `json:"days,omitempty"`
	Base         int64 `json:"base,omitempty"`
	Discount     int64 `json:"discount"`
	ExtrasTotal  int64 `json:"extras_total"`
	DeliveryCost int64 `json:"delivery_cost"`
	Total        int64 `json:"total"`
	Deposit      int64 `json:"deposit"`
	PayAtCounter int64 `json:"pay_at_counter"`
}
