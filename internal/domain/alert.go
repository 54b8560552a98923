package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertStatus string

const (
	AlertPending    AlertStatus = "pending"
	AlertActive     AlertStatus = "active"
	AlertResponding AlertStatus = "responding"
	AlertResolved   AlertStatus = "resolved"
	AlertCancelled  AlertStatus = "cancelled"
	AlertExpired    AlertStatus = "expired"
)

// Closed reports whether the status is terminal.
func (s AlertStatus) Closed() bool {
	return s == AlertResolved || s == AlertCancelled || s == AlertExpired
}

// AcceptResult is the tagged outcome of the conditional accept at the
// store boundary. Exactly one concurrent accept may observe Accepted.
type AcceptResult int

const (
	AcceptUnknown AcceptResult = iota
	Accepted
	AlreadyTaken
	NotEligible
)

type AlertPriority string

const (
	PriorityLow      AlertPriority = "low"
	PriorityMedium   AlertPriority = "medium"
	PriorityHigh     AlertPriority = "high"
	PriorityCritical AlertPriority = "critical"
)

type NotifyStatus string

const (
	NotifyNotified   NotifyStatus = "notified"
	NotifyAccepted   NotifyStatus = "accepted"
	NotifyDeclined   NotifyStatus = "declined"
	NotifyNoResponse NotifyStatus = "no_response"
)

type ContactChannel string

const (
	ChannelSMS   ContactChannel = "sms"
	ChannelCall  ContactChannel = "call"
	ChannelPush  ContactChannel = "push"
	ChannelEmail ContactChannel = "email"
)

type DeliveryOutcome string

const (
	DeliverySent      DeliveryOutcome = "sent"
	DeliveryDelivered DeliveryOutcome = "delivered"
	DeliveryFailed    DeliveryOutcome = "failed"
)

type LocationPoint struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

type NotifiedVolunteer struct {
	VolunteerID uuid.UUID    `json:"volunteer_id"`
	NotifiedAt  time.Time    `json:"notified_at"`
	DistanceM   *float64     `json:"distance_m,omitempty"`
	Status      NotifyStatus `json:"status"`
}

type RespondingVolunteer struct {
	VolunteerID uuid.UUID `json:"volunteer_id"`
	AcceptedAt  time.Time `json:"accepted_at"`
	DistanceM   *float64  `json:"distance_m,omitempty"`
}

type NotifiedContact struct {
	ContactID uuid.UUID       `json:"contact_id"`
	Channel   ContactChannel  `json:"channel"`
	Outcome   DeliveryOutcome `json:"outcome"`
}

type TimelineEntry struct {
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Actor       uuid.UUID `json:"actor"`
	At          time.Time `json:"at"`
}

type Resolution struct {
	ResolvedBy uuid.UUID `json:"resolved_by"`
	ResolvedAt time.Time `json:"resolved_at"`
	Notes      string    `json:"notes,omitempty"`
	Rating     *int      `json:"rating,omitempty"`
	Feedback   string    `json:"feedback,omitempty"`
}

// Alert is the central aggregate. The nested lists are append-only and
// stored as documents; Status is the only concurrently contended field.
type Alert struct {
	ID                 uuid.UUID            `json:"id"`
	UserID             uuid.UUID            `json:"user_id"`
	Lat                float64              `json:"lat"`
	Lng                float64              `json:"lng"`
	Address            string               `json:"address,omitempty"`
	Message            string               `json:"message,omitempty"`
	Type               string               `json:"type"`
	Priority           AlertPriority        `json:"priority"`
	Status             AlertStatus          `json:"status"`
	LocationHistory    []LocationPoint      `json:"location_history"`
	NotifiedVolunteers []NotifiedVolunteer  `json:"notified_volunteers"`
	Responding         *RespondingVolunteer `json:"responding,omitempty"`
	NotifiedContacts   []NotifiedContact    `json:"notified_contacts"`
	Timeline           []TimelineEntry      `json:"timeline"`
	Resolution         *Resolution          `json:"resolution,omitempty"`
	ResponseTimeSecs   *int64               `json:"response_time_secs,omitempty"`
	TotalDurationSecs  *int64               `json:"total_duration_secs,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// NotifiedEntry returns the notified-volunteers entry for the given
// volunteer, or nil. At most one entry per volunteer exists.
func (a *Alert) NotifiedEntry(volunteerID uuid.UUID) *NotifiedVolunteer {
	for i := range a.NotifiedVolunteers {
		if a.NotifiedVolunteers[i].VolunteerID == volunteerID {
			return &a.NotifiedVolunteers[i]
		}
	}
	return nil
}

func (a *Alert) AppendTimeline(action, description string, actor uuid.UUID, at time.Time) {
	a.Timeline = append(a.Timeline, TimelineEntry{
		Action:      action,
		Description: description,
		Actor:       actor,
		At:          at,
	})
}
