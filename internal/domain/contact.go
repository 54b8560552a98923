package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxActiveContacts caps the active emergency contacts per user.
const MaxActiveContacts = 5

type EmergencyContact struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship,omitempty"`
	IsPrimary    bool      `json:"is_primary"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
