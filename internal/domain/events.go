package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event names published to the per-subscriber channels.
const (
	EventNewAlert            = "new_alert"
	EventVolunteerResponding = "volunteer_responding"
	EventAlertCancelled      = "alert_cancelled"
	EventLocationUpdate      = "location_update"
)

// NewAlertEvent is pushed to each matched volunteer.
type NewAlertEvent struct {
	AlertID       uuid.UUID     `json:"alert_id"`
	Lat           float64       `json:"lat"`
	Lng           float64       `json:"lng"`
	Address       string        `json:"address,omitempty"`
	DistanceM     *float64      `json:"distance_m,omitempty"`
	RequesterName string        `json:"requester_name"`
	Message       string        `json:"message,omitempty"`
	Type          string        `json:"type"`
	Priority      AlertPriority `json:"priority"`
	CreatedAt     time.Time     `json:"created_at"`
}

// VolunteerRespondingEvent is pushed to the alert owner after an accept.
type VolunteerRespondingEvent struct {
	AlertID       uuid.UUID `json:"alert_id"`
	VolunteerID   uuid.UUID `json:"volunteer_id"`
	VolunteerName string    `json:"volunteer_name"`
	DistanceM     *float64  `json:"distance_m,omitempty"`
	ETAMinutes    *int      `json:"eta_minutes,omitempty"`
	AcceptedAt    time.Time `json:"accepted_at"`
}

type AlertCancelledEvent struct {
	AlertID     uuid.UUID `json:"alert_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// LocationUpdateEvent is pushed to the responding volunteer while the
// owner keeps live tracking on.
type LocationUpdateEvent struct {
	AlertID    uuid.UUID `json:"alert_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}
