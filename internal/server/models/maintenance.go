package models

import "time"

// Maintenance is a single maintenance record for a vehicle. Date is an ISO
// date string; VehicleName is filled by list/detail queries via a join and
// is not a column of the maintenances table.
type Maintenance struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicle_id"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	KmOrHours   int64     `json:"km_or_hours"`
	Cost        float64   `json:"cost"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	VehicleName string    `json:"vehicle_name,omitempty"`
}
