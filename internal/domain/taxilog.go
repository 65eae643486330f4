package domain

import "time"

// TaxiLog is a daily cash settlement handed in by a taxi driver.
// At most one log may exist per driver per calendar date.
type TaxiLog struct {
	ID        string    `json:"id"`
	DriverID  string    `json:"driver_id"`
	Date      time.Time `json:"date"`
	Amount    int64     `json:"amount" validate:"gte=0"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
