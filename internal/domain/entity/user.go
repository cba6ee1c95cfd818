// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns devices and company settings.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"` // Unique login name.
	PasswordHash string    `json:"-"`        // Bcrypt hash, never serialized.
	Name         string    `json:"name"`
	Email        *string   `json:"email"` // Optional contact address.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
