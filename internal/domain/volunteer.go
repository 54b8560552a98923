package domain

import (
	"time"

	"github.com/google/uuid"
)

type VolunteerStatus string

const (
	VolunteerPending   VolunteerStatus = "pending"
	VolunteerActive    VolunteerStatus = "active"
	VolunteerInactive  VolunteerStatus = "inactive"
	VolunteerSuspended VolunteerStatus = "suspended"
)

type Badge struct {
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earned_at"`
}

// VolunteerStats carries the denormalized running aggregates. Counts are
// stored alongside averages so incremental updates stay exact.
type VolunteerStats struct {
	TotalResponses    int     `json:"total_responses"`
	SuccessfulAssists int     `json:"successful_assists"`
	DeclinedCount     int     `json:"declined_count"`
	AvgResponseSecs   float64 `json:"avg_response_secs"`
	AvgRating         float64 `json:"avg_rating"`
	RatingCount       int     `json:"rating_count"`
}

type Volunteer struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	Verified          bool            `json:"verified"`
	Status            VolunteerStatus `json:"status"`
	OnDuty            bool            `json:"on_duty"`
	Lat               *float64        `json:"lat,omitempty"`
	Lng               *float64        `json:"lng,omitempty"`
	LocationUpdatedAt *time.Time      `json:"location_updated_at,omitempty"`
	Stats             VolunteerStats  `json:"stats"`
	Badges            []Badge         `json:"badges"`
	CreatedAt         time.Time       `json:"created_at"`
}

// HasBadge reports whether the badge was already earned. Badges are
// monotone: once present, never removed or duplicated.
func (v *Volunteer) HasBadge(name string) bool {
	for _, b := range v.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// MatchedVolunteer pairs a candidate responder with the distance to the
// alert, when one could be computed.
type MatchedVolunteer struct {
	Volunteer Volunteer
	DistanceM *float64
}
