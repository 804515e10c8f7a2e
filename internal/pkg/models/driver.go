package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverProfile is the slice of the driver record this service reads
type DriverProfile struct {
	DriverID     uuid.UUID `json:"driver_id" db:"driver_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	VehiclePlate string    `json:"vehicle_plate" db:"vehicle_plate"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
