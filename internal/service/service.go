package service

import (
	"context"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Actor is the authenticated caller, as asserted by the API gateway.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == "admin" }

// AlertStore mirrors the persistence contract the lifecycle manager needs.
// The accept transition is a conditional update at the store, never a
// read-then-write here.
type AlertStore interface {
	Create(ctx context.Context, alert *domain.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	SetDispatchResults(ctx context.Context, id uuid.UUID, volunteers []domain.NotifiedVolunteer, contacts []domain.NotifiedContact) error
	Accept(ctx context.Context, id, volunteerID uuid.UUID, now time.Time) (domain.AcceptResult, *domain.Alert, error)
	MarkDeclined(ctx context.Context, id, volunteerID uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID, entry domain.TimelineEntry) (bool, error)
	Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution, durationSecs int64, entry domain.TimelineEntry) (bool, error)
	SetFeedback(ctx context.Context, id uuid.UUID, rating int, feedback string) (bool, error)
	AppendLocation(ctx context.Context, id uuid.UUID, point domain.LocationPoint) (bool, error)
}

type VolunteerStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	FindNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.MatchedVolunteer, error)
	ListOnDuty(ctx context.Context, limit int) ([]domain.Volunteer, error)
	UpdateStats(ctx context.Context, id uuid.UUID, stats domain.VolunteerStats, badges []domain.Badge) error
	IncrementDeclined(ctx context.Context, id uuid.UUID) error
}

type ContactStore interface {
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error)
}

type RosterCache interface {
	Get(ctx context.Context) ([]domain.Volunteer, error)
	Set(ctx context.Context, roster []domain.Volunteer, ttl time.Duration) error
}

// Publisher is the pub/sub fan-out boundary: at-most-once, best-effort,
// addressed by subscriber identity.
type Publisher interface {
	Publish(ctx context.Context, subscriberID uuid.UUID, event string, payload interface{}) error
}

// Gateway is the SMS/voice channel boundary.
type Gateway interface {
	SendSMS(ctx context.Context, phone, text string) domain.DeliveryOutcome
	Call(ctx context.Context, phone, script string) domain.DeliveryOutcome
}

type Matcher interface {
	Match(ctx context.Context, lat, lng float64) ([]domain.MatchedVolunteer, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, alert *domain.Alert, matched []domain.MatchedVolunteer, contacts []domain.EmergencyContact, requesterName string) ([]domain.NotifiedVolunteer, []domain.NotifiedContact)
	NotifyResponding(ctx context.Context, alert *domain.Alert, volunteer *domain.Volunteer)
	NotifyCancelled(ctx context.Context, alert *domain.Alert)
	PublishLocationUpdate(ctx context.Context, alert *domain.Alert, point domain.LocationPoint)
}

type Reputation interface {
	RecordResolution(ctx context.Context, volunteerID uuid.UUID, responseSecs int64) error
	ApplyRating(ctx context.Context, volunteerID uuid.UUID, rating int) error
}

type AlertService interface {
	Create(ctx context.Context, actor Actor, req domain.CreateAlertRequest) (domain.CreateAlertResponse, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Alert, error)
	Accept(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Alert, error)
	Decline(ctx context.Context, actor Actor, id uuid.UUID) error
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) error
	Resolve(ctx context.Context, actor Actor, id uuid.UUID, req domain.ResolveAlertRequest) error
	SubmitFeedback(ctx context.Context, actor Actor, id uuid.UUID, req domain.FeedbackRequest) error
	UpdateLocation(ctx context.Context, actor Actor, id uuid.UUID, req domain.UpdateLocationRequest) error
}

type Service struct {
	Alerts AlertService
}

func NewService(alerts AlertService) *Service {
	return &Service{Alerts: alerts}
}
