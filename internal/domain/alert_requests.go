package domain

import "github.com/google/uuid"

// Lat and Lng are pointers so an absent coordinate fails validation
// instead of decoding as (0,0).
type CreateAlertRequest struct {
	Lat      *float64      `json:"lat" validate:"required,lat"`
	Lng      *float64      `json:"lng" validate:"required,lng"`
	Address  string        `json:"address" validate:"omitempty,max=500"`
	Message  string        `json:"message" validate:"omitempty,max=1000"`
	Type     string        `json:"type" validate:"omitempty,oneof=general medical harassment accident fire other"`
	Priority AlertPriority `json:"priority" validate:"omitempty,oneof=low medium high critical"`
}

// CreateAlertResponse deliberately returns counts, never the notification
// payloads themselves.
type CreateAlertResponse struct {
	AlertID            uuid.UUID `json:"alert_id"`
	VolunteersNotified int       `json:"volunteers_notified"`
	ContactsNotified   int       `json:"contacts_notified"`
}

type ResolveAlertRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

type FeedbackRequest struct {
	Rating   int    `json:"rating" validate:"rating"`
	Feedback string `json:"feedback" validate:"omitempty,max=2000"`
}

type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,lat"`
	Lng *float64 `json:"lng" validate:"required,lng"`
}
