package domain

import "time"

type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverBusy      DriverStatus = "busy"
	DriverOffDuty   DriverStatus = "off_duty"
)

type Driver struct {
	ID               string       `json:"id"`
	Name             string       `json:"name" validate:"required"`
	License          string       `json:"license"`
	Phone            string       `json:"phone,omitempty"`
	Status           DriverStatus `json:"status"`
	CurrentVehicleID string       `json:"current_vehicle_id,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// OnDuty reports whether the driver currently occupies a vehicle for taxi
// work. An on-duty driver's vehicle is excluded from rental availability.
func (d Driver) OnDuty() bool {
	return d.Status != DriverOffDuty
}
