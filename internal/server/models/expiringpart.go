package models

import "time"

// ExpiringPart tracks a part with a shelf life. The system stores the expiry
// date and the replaced flag; it does not compute schedules.
type ExpiringPart struct {
	ID         string    `json:"id"`
	VehicleID  string    `json:"vehicle_id"`
	Name       string    `json:"name"`
	PartNumber string    `json:"part_number"`
	ExpiryDate string    `json:"expiry_date"`
	Replaced   bool      `json:"replaced"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}
