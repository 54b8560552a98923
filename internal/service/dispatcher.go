package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/config"
	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/internal/notify"
)

type notificationDispatcher struct {
	publisher   Publisher
	gateway     Gateway
	logger      *slog.Logger
	cfg         config.DispatchConfig
	countryCode string
}

func NewNotificationDispatcher(publisher Publisher, gateway Gateway, logger *slog.Logger, cfg config.DispatchConfig, countryCode string) Dispatcher {
	return &notificationDispatcher{
		publisher:   publisher,
		gateway:     gateway,
		logger:      logger,
		cfg:         cfg,
		countryCode: countryCode,
	}
}

// Dispatch fans the alert out to matched volunteers (push) and the owner's
// emergency contacts (SMS, plus a voice call to the primary). Sends are
// independent; one failed recipient never aborts the rest, and every
// outcome is recorded per recipient.
func (d *notificationDispatcher) Dispatch(ctx context.Context, alert *domain.Alert, matched []domain.MatchedVolunteer, contacts []domain.EmergencyContact, requesterName string) ([]domain.NotifiedVolunteer, []domain.NotifiedContact) {
	now := time.Now().UTC()

	notifiedVolunteers := make([]domain.NotifiedVolunteer, 0, len(matched))
	for _, mv := range matched {
		event := domain.NewAlertEvent{
			AlertID:       alert.ID,
			Lat:           alert.Lat,
			Lng:           alert.Lng,
			Address:       alert.Address,
			DistanceM:     mv.DistanceM,
			RequesterName: requesterName,
			Message:       alert.Message,
			Type:          alert.Type,
			Priority:      alert.Priority,
			CreatedAt:     alert.CreatedAt,
		}
		// Fire-and-forget: push delivery never gates alert creation.
		if err := d.publisher.Publish(ctx, mv.Volunteer.ID, domain.EventNewAlert, event); err != nil {
			d.logger.Warn("volunteer publish failed",
				slog.String("alert_id", alert.ID.String()),
				slog.String("volunteer_id", mv.Volunteer.ID.String()),
				slog.Any("error", err),
			)
		}
		notifiedVolunteers = append(notifiedVolunteers, domain.NotifiedVolunteer{
			VolunteerID: mv.Volunteer.ID,
			NotifiedAt:  now,
			DistanceM:   mv.DistanceM,
			Status:      domain.NotifyNotified,
		})
	}

	trackingLink := fmt.Sprintf("%s/%s", d.cfg.TrackingBaseURL, alert.ID)
	smsText := fmt.Sprintf("EMERGENCY! %s needs help. Live location: %s", requesterName, trackingLink)
	callScript := fmt.Sprintf("This is an emergency alert from SafeHer. %s has raised an SOS. Check your messages for the live location link.", requesterName)

	notifiedContacts := make([]domain.NotifiedContact, 0, len(contacts))
	for _, c := range contacts {
		phone := notify.NormalizePhone(c.Phone, d.countryCode)
		if phone == "" {
			d.logger.Warn("contact has no usable phone",
				slog.String("contact_id", c.ID.String()),
			)
			notifiedContacts = append(notifiedContacts, domain.NotifiedContact{
				ContactID: c.ID,
				Channel:   domain.ChannelSMS,
				Outcome:   domain.DeliveryFailed,
			})
			continue
		}

		outcome := d.gateway.SendSMS(ctx, phone, smsText)
		notifiedContacts = append(notifiedContacts, domain.NotifiedContact{
			ContactID: c.ID,
			Channel:   domain.ChannelSMS,
			Outcome:   outcome,
		})

		// Voice call goes only to the primary contact.
		if c.IsPrimary {
			outcome := d.gateway.Call(ctx, phone, callScript)
			notifiedContacts = append(notifiedContacts, domain.NotifiedContact{
				ContactID: c.ID,
				Channel:   domain.ChannelCall,
				Outcome:   outcome,
			})
		}
	}

	return notifiedVolunteers, notifiedContacts
}

func (d *notificationDispatcher) NotifyResponding(ctx context.Context, alert *domain.Alert, volunteer *domain.Volunteer) {
	event := domain.VolunteerRespondingEvent{AlertID: alert.ID}
	if volunteer != nil {
		event.VolunteerID = volunteer.ID
		event.VolunteerName = volunteer.Name
	}
	if alert.Responding != nil {
		event.VolunteerID = alert.Responding.VolunteerID
		event.DistanceM = alert.Responding.DistanceM
		event.AcceptedAt = alert.Responding.AcceptedAt
		if alert.Responding.DistanceM != nil {
			eta := d.etaMinutes(*alert.Responding.DistanceM)
			event.ETAMinutes = &eta
		}
	}

	if err := d.publisher.Publish(ctx, alert.UserID, domain.EventVolunteerResponding, event); err != nil {
		d.logger.Warn("responding publish failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (d *notificationDispatcher) NotifyCancelled(ctx context.Context, alert *domain.Alert) {
	if alert.Responding == nil {
		return
	}
	event := domain.AlertCancelledEvent{
		AlertID:     alert.ID,
		CancelledAt: time.Now().UTC(),
	}
	if err := d.publisher.Publish(ctx, alert.Responding.VolunteerID, domain.EventAlertCancelled, event); err != nil {
		d.logger.Warn("cancel publish failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (d *notificationDispatcher) PublishLocationUpdate(ctx context.Context, alert *domain.Alert, point domain.LocationPoint) {
	if alert.Responding == nil {
		return
	}
	event := domain.LocationUpdateEvent{
		AlertID:    alert.ID,
		Lat:        point.Lat,
		Lng:        point.Lng,
		RecordedAt: point.RecordedAt,
	}
	if err := d.publisher.Publish(ctx, alert.Responding.VolunteerID, domain.EventLocationUpdate, event); err != nil {
		d.logger.Warn("location publish failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}
}

// etaMinutes derives a coarse arrival estimate from straight-line distance
// and the configured ground speed, never less than one minute.
func (d *notificationDispatcher) etaMinutes(distanceM float64) int {
	eta := int(math.Ceil(distanceM / d.cfg.ETASpeedMetersPerMin))
	if eta < 1 {
		eta = 1
	}
	return eta
}
