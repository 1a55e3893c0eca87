// Package models defines the server-side records persisted in PostgreSQL.
package models

import "time"

// User is an identity record. PasswordHash is a bcrypt hash and is never
// serialized into responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
