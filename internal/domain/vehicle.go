package domain

import "time"

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleRented      VehicleStatus = "rented"
	// VehicleCleaning is a projected display status only, it is never stored.
	VehicleCleaning VehicleStatus = "cleaning"
)

type VehicleCategory string

const (
	CategoryEconomy VehicleCategory = "economy"
	CategorySUV     VehicleCategory = "suv"
	CategoryLuxury  VehicleCategory = "luxury"
	CategoryVan     VehicleCategory = "van"
)

type UsageType string

const (
	UsageRental UsageType = "rental"
	UsageTaxi   UsageType = "taxi"
	UsageBoth   UsageType = "both"
)

type Vehicle struct {
	ID           string          `json:"id"`
	Make         string          `json:"make" validate:"required"`
	Model        string          `json:"model" validate:"required"`
	Year         int             `json:"year"`
	Category     VehicleCategory `json:"category"`
	Transmission string          `json:"transmission,omitempty"`
	Seats        int             `json:"seats"`
	PricePerDay  int64           `json:"price_per_day" validate:"gte=0"`
	Status       VehicleStatus   `json:"status"`
	Available    bool            `json:"available"`
	Usage        UsageType       `json:"usage"`
	Rating       float64         `json:"rating,omitempty"`
	ReviewCount  int             `json:"review_count,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Rentable reports whether the vehicle may be offered to rental customers
// at all. Taxi-only units never appear in the public fleet.
func (v Vehicle) Rentable() bool {
	return v.Usage != UsageTaxi
}
