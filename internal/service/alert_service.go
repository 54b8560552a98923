package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/pkg/e"

	"github.com/google/uuid"
)

type alertService struct {
	alerts     AlertStore
	volunteers VolunteerStore
	contacts   ContactStore
	matcher    Matcher
	dispatcher Dispatcher
	reputation Reputation
	logger     *slog.Logger
}

func NewAlertService(
	alerts AlertStore,
	volunteers VolunteerStore,
	contacts ContactStore,
	matcher Matcher,
	dispatcher Dispatcher,
	reputation Reputation,
	logger *slog.Logger,
) AlertService {
	return &alertService{
		alerts:     alerts,
		volunteers: volunteers,
		contacts:   contacts,
		matcher:    matcher,
		dispatcher: dispatcher,
		reputation: reputation,
		logger:     logger,
	}
}

func (s *alertService) Create(ctx context.Context, actor Actor, req domain.CreateAlertRequest) (domain.CreateAlertResponse, error) {
	lat, lng, err := coordinates(req.Lat, req.Lng)
	if err != nil {
		return domain.CreateAlertResponse{}, err
	}

	now := time.Now().UTC()
	alert := &domain.Alert{
		ID:        uuid.New(),
		UserID:    actor.ID,
		Lat:       lat,
		Lng:       lng,
		Address:   req.Address,
		Message:   req.Message,
		Type:      req.Type,
		Priority:  req.Priority,
		Status:    domain.AlertActive,
		CreatedAt: now,
	}
	if alert.Type == "" {
		alert.Type = "general"
	}
	if alert.Priority == "" {
		alert.Priority = domain.PriorityHigh
	}
	alert.AppendTimeline("created", "SOS alert created", actor.ID, now)

	if err := s.alerts.Create(ctx, alert); err != nil {
		return domain.CreateAlertResponse{}, err
	}

	// Matching and contact lookup are best-effort from here on: the alert
	// exists, and an infrastructure hiccup must not fail its creation.
	matched, err := s.matcher.Match(ctx, alert.Lat, alert.Lng)
	if err != nil {
		s.logger.Error("volunteer matching failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
		matched = nil
	}

	contacts, err := s.contacts.ListActiveByUser(ctx, actor.ID)
	if err != nil {
		s.logger.Error("contact lookup failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
		contacts = nil
	}

	notifiedVolunteers, notifiedContacts := s.dispatcher.Dispatch(ctx, alert, matched, contacts, actor.Name)

	if err := s.alerts.SetDispatchResults(ctx, alert.ID, notifiedVolunteers, notifiedContacts); err != nil {
		s.logger.Error("persisting dispatch results failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}

	s.logger.Info("alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.Int("volunteers_notified", len(notifiedVolunteers)),
		slog.Int("contacts_notified", len(notifiedContacts)),
	)

	return domain.CreateAlertResponse{
		AlertID:            alert.ID,
		VolunteersNotified: len(notifiedVolunteers),
		ContactsNotified:   len(notifiedContacts),
	}, nil
}

func (s *alertService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Alert, error) {
	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.mayView(actor, alert) {
		return nil, e.ErrForbidden
	}
	return alert, nil
}

func (s *alertService) mayView(actor Actor, alert *domain.Alert) bool {
	if actor.IsAdmin() || alert.UserID == actor.ID {
		return true
	}
	return alert.Responding != nil && alert.Responding.VolunteerID == actor.ID
}

// Accept runs the race-safe active -> responding transition. Exactly one
// concurrent acceptance succeeds; the rest surface Already-Taken.
func (s *alertService) Accept(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Alert, error) {
	result, alert, err := s.alerts.Accept(ctx, id, actor.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	switch result {
	case domain.Accepted:
	case domain.NotEligible:
		return nil, e.ErrNotNotified
	case domain.AlreadyTaken:
		return nil, e.ErrAlreadyTaken
	default:
		return nil, e.ErrInternal
	}

	volunteer, err := s.volunteers.Get(ctx, actor.ID)
	if err != nil {
		s.logger.Warn("responding volunteer profile lookup failed",
			slog.String("volunteer_id", actor.ID.String()),
			slog.Any("error", err),
		)
		volunteer = nil
	}
	s.dispatcher.NotifyResponding(ctx, alert, volunteer)

	s.logger.Info("alert accepted",
		slog.String("alert_id", id.String()),
		slog.String("volunteer_id", actor.ID.String()),
	)
	return alert, nil
}

func (s *alertService) Decline(ctx context.Context, actor Actor, id uuid.UUID) error {
	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return err
	}
	entry := alert.NotifiedEntry(actor.ID)
	if entry == nil {
		return e.ErrNotNotified
	}
	if entry.Status != domain.NotifyNotified {
		// Already accepted or declined; nothing left to record.
		return nil
	}

	if err := s.alerts.MarkDeclined(ctx, id, actor.ID); err != nil {
		return err
	}
	// Surfaces Not-Found when the volunteer profile is gone.
	return s.volunteers.IncrementDeclined(ctx, actor.ID)
}

func (s *alertService) Cancel(ctx context.Context, actor Actor, id uuid.UUID) error {
	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return err
	}
	if alert.UserID != actor.ID {
		return e.ErrForbidden
	}

	now := time.Now().UTC()
	ok, err := s.alerts.Cancel(ctx, id, domain.TimelineEntry{
		Action:      "cancelled",
		Description: "alert cancelled by owner",
		Actor:       actor.ID,
		At:          now,
	})
	if err != nil {
		return err
	}
	if !ok {
		return e.ErrConflict
	}

	s.dispatcher.NotifyCancelled(ctx, alert)
	s.logger.Info("alert cancelled", slog.String("alert_id", id.String()))
	return nil
}

func (s *alertService) Resolve(ctx context.Context, actor Actor, id uuid.UUID, req domain.ResolveAlertRequest) error {
	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return err
	}

	isResponder := alert.Responding != nil && alert.Responding.VolunteerID == actor.ID
	if !actor.IsAdmin() && alert.UserID != actor.ID && !isResponder {
		return e.ErrForbidden
	}

	now := time.Now().UTC()
	durationSecs := int64(now.Sub(alert.CreatedAt).Seconds())
	if durationSecs < 0 {
		durationSecs = 0
	}

	ok, err := s.alerts.Resolve(ctx, id, domain.Resolution{
		ResolvedBy: actor.ID,
		ResolvedAt: now,
		Notes:      req.Notes,
	}, durationSecs, domain.TimelineEntry{
		Action:      "resolved",
		Description: "alert resolved",
		Actor:       actor.ID,
		At:          now,
	})
	if err != nil {
		return err
	}
	if !ok {
		return e.ErrConflict
	}

	if isResponder && alert.ResponseTimeSecs != nil {
		if err := s.reputation.RecordResolution(ctx, actor.ID, *alert.ResponseTimeSecs); err != nil {
			s.logger.Error("reputation update failed",
				slog.String("volunteer_id", actor.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.logger.Info("alert resolved",
		slog.String("alert_id", id.String()),
		slog.Int64("total_duration_secs", durationSecs),
	)
	return nil
}

func (s *alertService) SubmitFeedback(ctx context.Context, actor Actor, id uuid.UUID, req domain.FeedbackRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return e.ErrInvalidRating
	}

	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return err
	}
	if alert.UserID != actor.ID {
		return e.ErrForbidden
	}

	ok, err := s.alerts.SetFeedback(ctx, id, req.Rating, req.Feedback)
	if err != nil {
		return err
	}
	if !ok {
		// Alert is not resolved yet, or feedback was already submitted.
		// Either way the rating must not reach the volunteer twice.
		return e.ErrConflict
	}

	if alert.Responding != nil {
		if err := s.reputation.ApplyRating(ctx, alert.Responding.VolunteerID, req.Rating); err != nil {
			s.logger.Error("rating propagation failed",
				slog.String("volunteer_id", alert.Responding.VolunteerID.String()),
				slog.Any("error", err),
			)
		}
	}
	return nil
}

func (s *alertService) UpdateLocation(ctx context.Context, actor Actor, id uuid.UUID, req domain.UpdateLocationRequest) error {
	lat, lng, err := coordinates(req.Lat, req.Lng)
	if err != nil {
		return err
	}

	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return err
	}
	if alert.UserID != actor.ID {
		return e.ErrForbidden
	}

	point := domain.LocationPoint{
		Lat:        lat,
		Lng:        lng,
		RecordedAt: time.Now().UTC(),
	}
	ok, err := s.alerts.AppendLocation(ctx, id, point)
	if err != nil {
		return err
	}
	if !ok {
		return e.ErrConflict
	}

	s.dispatcher.PublishLocationUpdate(ctx, alert, point)
	return nil
}

// coordinates rejects absent or out-of-range positions before they reach
// storage. The HTTP layer validates too; callers of the service directly
// get the same guarantee.
func coordinates(lat, lng *float64) (float64, float64, error) {
	if lat == nil || lng == nil {
		return 0, 0, e.ErrInvalidCoordinates
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return 0, 0, e.ErrInvalidCoordinates
	}
	return *lat, *lng, nil
}
