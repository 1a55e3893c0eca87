package models

import "time"

type Vehicle struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ChassisNumber string    `json:"chassis_number"`
	Plate         string    `json:"plate"`
	EngineSerial  string    `json:"engine_serial"`
	KmOrHours     int64     `json:"km_or_hours"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
