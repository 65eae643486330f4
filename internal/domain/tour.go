package domain

import "time"

type Tour struct {
	ID             string    `json:"id"`
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description,omitempty"`
	PricePerPerson int64     `json:"price_per_person" validate:"gte=0"`
	Capacity       int       `json:"capacity" validate:"gt=0"`
	DurationHours  int       `json:"duration_hours"`
	Features       []string  `json:"features,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
