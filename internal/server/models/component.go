package models

import "time"

// Component is a part installed on a vehicle.
type Component struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	Name          string    `json:"name"`
	PartNumber    string    `json:"part_number"`
	InstalledDate string    `json:"installed_date"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
