package postgres

import (
	"context"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"

	"github.com/google/uuid"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	SetDispatchResults(ctx context.Context, id uuid.UUID, volunteers []domain.NotifiedVolunteer, contacts []domain.NotifiedContact) error
	Accept(ctx context.Context, id, volunteerID uuid.UUID, now time.Time) (domain.AcceptResult, *domain.Alert, error)
	MarkDeclined(ctx context.Context, id, volunteerID uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID, entry domain.TimelineEntry) (bool, error)
	Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution, durationSecs int64, entry domain.TimelineEntry) (bool, error)
	SetFeedback(ctx context.Context, id uuid.UUID, rating int, feedback string) (bool, error)
	AppendLocation(ctx context.Context, id uuid.UUID, point domain.LocationPoint) (bool, error)
	ExpireStale(ctx context.Context, olderThan time.Time) (int64, error)
	DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error)
}

type VolunteerRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	Create(ctx context.Context, v *domain.Volunteer) error
	FindNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.MatchedVolunteer, error)
	ListOnDuty(ctx context.Context, limit int) ([]domain.Volunteer, error)
	UpdateStats(ctx context.Context, id uuid.UUID, stats domain.VolunteerStats, badges []domain.Badge) error
	IncrementDeclined(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	Create(ctx context.Context, c *domain.EmergencyContact) error
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error)
	SetPrimary(ctx context.Context, userID, contactID uuid.UUID) error
}
