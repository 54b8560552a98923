package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/internal/service"
	"github.com/gitsunil577/SafeHer-Backend/pkg/e"

	mock_service "github.com/gitsunil577/SafeHer-Backend/internal/service/mocks"
)

// --- helpers ---

func f64ptr(v float64) *float64 { return &v }
func i64ptr(v int64) *int64     { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type alertDeps struct {
	alerts     *mock_service.MockAlertStore
	volunteers *mock_service.MockVolunteerStore
	contacts   *mock_service.MockContactStore
	matcher    *mock_service.MockMatcher
	dispatcher *mock_service.MockDispatcher
	reputation *mock_service.MockReputation
}

func newAlertService(ctrl *gomock.Controller) (service.AlertService, alertDeps) {
	d := alertDeps{
		alerts:     mock_service.NewMockAlertStore(ctrl),
		volunteers: mock_service.NewMockVolunteerStore(ctrl),
		contacts:   mock_service.NewMockContactStore(ctrl),
		matcher:    mock_service.NewMockMatcher(ctrl),
		dispatcher: mock_service.NewMockDispatcher(ctrl),
		reputation: mock_service.NewMockReputation(ctrl),
	}
	svc := service.NewAlertService(d.alerts, d.volunteers, d.contacts, d.matcher, d.dispatcher, d.reputation, discardLogger())
	return svc, d
}

// --- Create ---

func TestAlertService_Create_OK_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	owner := service.Actor{ID: uuid.New(), Name: "Priya"}

	var got *domain.Alert
	d.alerts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) error {
			got = a
			return nil
		}).
		Times(1)

	matched := []domain.MatchedVolunteer{
		{Volunteer: domain.Volunteer{ID: uuid.New()}, DistanceM: f64ptr(420)},
		{Volunteer: domain.Volunteer{ID: uuid.New()}},
	}
	d.matcher.EXPECT().
		Match(gomock.Any(), 12.9716, 77.5946).
		Return(matched, nil).
		Times(1)

	contacts := []domain.EmergencyContact{{ID: uuid.New(), Phone: "9876543210", IsPrimary: true}}
	d.contacts.EXPECT().
		ListActiveByUser(gomock.Any(), owner.ID).
		Return(contacts, nil).
		Times(1)

	notifiedVols := []domain.NotifiedVolunteer{
		{VolunteerID: matched[0].Volunteer.ID, Status: domain.NotifyNotified},
		{VolunteerID: matched[1].Volunteer.ID, Status: domain.NotifyNotified},
	}
	notifiedContacts := []domain.NotifiedContact{
		{ContactID: contacts[0].ID, Channel: domain.ChannelSMS, Outcome: domain.DeliverySent},
	}
	d.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), matched, contacts, "Priya").
		Return(notifiedVols, notifiedContacts).
		Times(1)

	d.alerts.EXPECT().
		SetDispatchResults(gomock.Any(), gomock.Any(), notifiedVols, notifiedContacts).
		Return(nil).
		Times(1)

	resp, err := svc.Create(context.Background(), owner, domain.CreateAlertRequest{
		Lat: f64ptr(12.9716), Lng: f64ptr(77.5946),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.AlertID == uuid.Nil {
		t.Fatalf("expected non-nil alert id")
	}
	if resp.VolunteersNotified != 2 || resp.ContactsNotified != 1 {
		t.Fatalf("unexpected counts: %+v", resp)
	}

	if got == nil {
		t.Fatalf("alert was not persisted")
	}
	if got.Status != domain.AlertActive {
		t.Fatalf("expected default status=%q, got=%q", domain.AlertActive, got.Status)
	}
	if got.Type != "general" {
		t.Fatalf("expected default type=general, got=%q", got.Type)
	}
	if got.Priority != domain.PriorityHigh {
		t.Fatalf("expected default priority=%q, got=%q", domain.PriorityHigh, got.Priority)
	}
	if got.UserID != owner.ID {
		t.Fatalf("owner mismatch")
	}
	if len(got.Timeline) != 1 || got.Timeline[0].Action != "created" {
		t.Fatalf("expected a single created timeline entry, got %+v", got.Timeline)
	}
}

func TestAlertService_Create_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAlertService(ctrl)

	cases := []struct {
		name     string
		lat, lng *float64
	}{
		{"lat_too_high", f64ptr(90.5), f64ptr(0)},
		{"lat_too_low", f64ptr(-91), f64ptr(0)},
		{"lng_too_high", f64ptr(0), f64ptr(180.5)},
		{"lng_too_low", f64ptr(0), f64ptr(-181)},
		{"lat_missing", nil, f64ptr(77.5946)},
		{"lng_missing", f64ptr(12.9716), nil},
		{"both_missing", nil, nil},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Create(context.Background(), service.Actor{ID: uuid.New()}, domain.CreateAlertRequest{Lat: c.lat, Lng: c.lng})
			if !errors.Is(err, e.ErrInvalidCoordinates) {
				t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
			}
		})
	}
}

func TestAlertService_Create_MatchingFailureStillCreates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	owner := service.Actor{ID: uuid.New(), Name: "Asha"}

	d.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	d.matcher.EXPECT().
		Match(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("postgis down")).
		Times(1)
	d.contacts.EXPECT().
		ListActiveByUser(gomock.Any(), owner.ID).
		Return(nil, errors.New("db down")).
		Times(1)
	d.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil(), "Asha").
		Return(nil, nil).
		Times(1)
	d.alerts.EXPECT().
		SetDispatchResults(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return(nil).
		Times(1)

	resp, err := svc.Create(context.Background(), owner, domain.CreateAlertRequest{Lat: f64ptr(1), Lng: f64ptr(1)})
	if err != nil {
		t.Fatalf("creation must survive matching failures: %v", err)
	}
	if resp.VolunteersNotified != 0 || resp.ContactsNotified != 0 {
		t.Fatalf("expected zero counts, got %+v", resp)
	}
}

func TestAlertService_Create_StoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)

	wantErr := errors.New("db down")
	d.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(wantErr).Times(1)

	_, err := svc.Create(context.Background(), service.Actor{ID: uuid.New()}, domain.CreateAlertRequest{Lat: f64ptr(1), Lng: f64ptr(1)})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// --- Get ---

func TestAlertService_Get_Visibility(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	responderID := uuid.New()
	alert := &domain.Alert{
		ID:         uuid.New(),
		UserID:     ownerID,
		Status:     domain.AlertResponding,
		Responding: &domain.RespondingVolunteer{VolunteerID: responderID},
	}

	cases := []struct {
		name    string
		actor   service.Actor
		wantErr error
	}{
		{"owner", service.Actor{ID: ownerID}, nil},
		{"responder", service.Actor{ID: responderID}, nil},
		{"admin", service.Actor{ID: uuid.New(), Role: "admin"}, nil},
		{"stranger", service.Actor{ID: uuid.New()}, e.ErrForbidden},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, d := newAlertService(ctrl)
			d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

			got, err := svc.Get(context.Background(), c.actor, alert.ID)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.ID != alert.ID {
				t.Fatalf("alert mismatch")
			}
		})
	}
}

// --- Accept ---

func TestAlertService_Accept_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	volunteerID := uuid.New()
	actor := service.Actor{ID: volunteerID, Name: "Ravi"}

	accepted := &domain.Alert{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: domain.AlertResponding,
		Responding: &domain.RespondingVolunteer{
			VolunteerID: volunteerID,
			AcceptedAt:  time.Now().UTC(),
			DistanceM:   f64ptr(800),
		},
	}
	d.alerts.EXPECT().
		Accept(gomock.Any(), accepted.ID, volunteerID, gomock.Any()).
		Return(domain.Accepted, accepted, nil).
		Times(1)

	volunteer := &domain.Volunteer{ID: volunteerID, Name: "Ravi"}
	d.volunteers.EXPECT().Get(gomock.Any(), volunteerID).Return(volunteer, nil).Times(1)
	d.dispatcher.EXPECT().NotifyResponding(gomock.Any(), accepted, volunteer).Times(1)

	got, err := svc.Accept(context.Background(), actor, accepted.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.AlertResponding {
		t.Fatalf("expected responding status, got %q", got.Status)
	}
}

func TestAlertService_Accept_RaceLoser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	id := uuid.New()

	d.alerts.EXPECT().
		Accept(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(domain.AlreadyTaken, nil, nil).
		Times(1)

	_, err := svc.Accept(context.Background(), service.Actor{ID: uuid.New()}, id)
	if !errors.Is(err, e.ErrAlreadyTaken) {
		t.Fatalf("race loser must see Already-Taken, got %v", err)
	}
}

func TestAlertService_Accept_NotNotified(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	id := uuid.New()

	d.alerts.EXPECT().
		Accept(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(domain.NotEligible, nil, nil).
		Times(1)

	_, err := svc.Accept(context.Background(), service.Actor{ID: uuid.New()}, id)
	if !errors.Is(err, e.ErrNotNotified) {
		t.Fatalf("expected ErrNotNotified, got %v", err)
	}
}

func TestAlertService_Accept_ProfileLookupFailureStillNotifies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	volunteerID := uuid.New()
	accepted := &domain.Alert{
		ID:         uuid.New(),
		Responding: &domain.RespondingVolunteer{VolunteerID: volunteerID},
	}

	d.alerts.EXPECT().
		Accept(gomock.Any(), accepted.ID, volunteerID, gomock.Any()).
		Return(domain.Accepted, accepted, nil).
		Times(1)
	d.volunteers.EXPECT().
		Get(gomock.Any(), volunteerID).
		Return(nil, e.ErrNotFound).
		Times(1)
	d.dispatcher.EXPECT().NotifyResponding(gomock.Any(), accepted, gomock.Nil()).Times(1)

	if _, err := svc.Accept(context.Background(), service.Actor{ID: volunteerID}, accepted.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

// --- Decline ---

func TestAlertService_Decline(t *testing.T) {
	t.Parallel()

	volunteerID := uuid.New()
	alert := &domain.Alert{
		ID:     uuid.New(),
		Status: domain.AlertActive,
		NotifiedVolunteers: []domain.NotifiedVolunteer{
			{VolunteerID: volunteerID, Status: domain.NotifyNotified},
		},
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)
		d.alerts.EXPECT().MarkDeclined(gomock.Any(), alert.ID, volunteerID).Return(nil).Times(1)
		d.volunteers.EXPECT().IncrementDeclined(gomock.Any(), volunteerID).Return(nil).Times(1)

		if err := svc.Decline(context.Background(), service.Actor{ID: volunteerID}, alert.ID); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("not_notified", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

		err := svc.Decline(context.Background(), service.Actor{ID: uuid.New()}, alert.ID)
		if !errors.Is(err, e.ErrNotNotified) {
			t.Fatalf("expected ErrNotNotified, got %v", err)
		}
	})

	// A volunteer who already accepted must not grow a declined_count by
	// hitting decline afterwards.
	t.Run("already_accepted_skips_stats", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accepted := &domain.Alert{
			ID:     uuid.New(),
			Status: domain.AlertResponding,
			NotifiedVolunteers: []domain.NotifiedVolunteer{
				{VolunteerID: volunteerID, Status: domain.NotifyAccepted},
			},
		}

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), accepted.ID).Return(accepted, nil).Times(1)

		if err := svc.Decline(context.Background(), service.Actor{ID: volunteerID}, accepted.ID); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

// --- Cancel ---

func TestAlertService_Cancel(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	alert := &domain.Alert{
		ID:         uuid.New(),
		UserID:     ownerID,
		Status:     domain.AlertResponding,
		Responding: &domain.RespondingVolunteer{VolunteerID: uuid.New()},
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

		var entry domain.TimelineEntry
		d.alerts.EXPECT().
			Cancel(gomock.Any(), alert.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, en domain.TimelineEntry) (bool, error) {
				entry = en
				return true, nil
			}).
			Times(1)
		d.dispatcher.EXPECT().NotifyCancelled(gomock.Any(), alert).Times(1)

		if err := svc.Cancel(context.Background(), service.Actor{ID: ownerID}, alert.ID); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if entry.Action != "cancelled" || entry.Actor != ownerID {
			t.Fatalf("unexpected timeline entry: %+v", entry)
		}
	})

	t.Run("not_owner", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

		err := svc.Cancel(context.Background(), service.Actor{ID: uuid.New()}, alert.ID)
		if !errors.Is(err, e.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("already_closed", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)
		d.alerts.EXPECT().Cancel(gomock.Any(), alert.ID, gomock.Any()).Return(false, nil).Times(1)

		err := svc.Cancel(context.Background(), service.Actor{ID: ownerID}, alert.ID)
		if !errors.Is(err, e.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

// --- Resolve ---

func TestAlertService_Resolve_ByResponderRecordsReputation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	responderID := uuid.New()
	alert := &domain.Alert{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Status:           domain.AlertResponding,
		Responding:       &domain.RespondingVolunteer{VolunteerID: responderID},
		ResponseTimeSecs: i64ptr(95),
		CreatedAt:        time.Now().UTC().Add(-10 * time.Minute),
	}

	d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

	var gotDuration int64
	d.alerts.EXPECT().
		Resolve(gomock.Any(), alert.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, res domain.Resolution, durationSecs int64, entry domain.TimelineEntry) (bool, error) {
			if res.ResolvedBy != responderID {
				t.Errorf("resolved_by mismatch: %s", res.ResolvedBy)
			}
			if entry.Action != "resolved" {
				t.Errorf("unexpected timeline action %q", entry.Action)
			}
			gotDuration = durationSecs
			return true, nil
		}).
		Times(1)
	d.reputation.EXPECT().RecordResolution(gomock.Any(), responderID, int64(95)).Return(nil).Times(1)

	if err := svc.Resolve(context.Background(), service.Actor{ID: responderID}, alert.ID, domain.ResolveAlertRequest{Notes: "safe"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotDuration < 590 || gotDuration > 660 {
		t.Fatalf("total duration should span alert age, got %d", gotDuration)
	}
}

func TestAlertService_Resolve_ByOwnerSkipsReputation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	ownerID := uuid.New()
	alert := &domain.Alert{
		ID:        uuid.New(),
		UserID:    ownerID,
		Status:    domain.AlertActive,
		CreatedAt: time.Now().UTC(),
	}

	d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)
	d.alerts.EXPECT().
		Resolve(gomock.Any(), alert.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil).
		Times(1)

	if err := svc.Resolve(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.ResolveAlertRequest{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAlertService_Resolve_Forbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	alert := &domain.Alert{ID: uuid.New(), UserID: uuid.New(), Status: domain.AlertActive}

	d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

	err := svc.Resolve(context.Background(), service.Actor{ID: uuid.New()}, alert.ID, domain.ResolveAlertRequest{})
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAlertService_Resolve_AlreadyClosed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newAlertService(ctrl)
	ownerID := uuid.New()
	alert := &domain.Alert{ID: uuid.New(), UserID: ownerID, Status: domain.AlertResolved}

	d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)
	d.alerts.EXPECT().
		Resolve(gomock.Any(), alert.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).
		Times(1)

	err := svc.Resolve(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.ResolveAlertRequest{})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

// --- Feedback ---

func TestAlertService_SubmitFeedback(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	responderID := uuid.New()
	alert := &domain.Alert{
		ID:         uuid.New(),
		UserID:     ownerID,
		Status:     domain.AlertResolved,
		Responding: &domain.RespondingVolunteer{VolunteerID: responderID},
	}

	t.Run("ok_propagates_rating", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)
		d.alerts.EXPECT().SetFeedback(gomock.Any(), alert.ID, 5, "thank you").Return(true, nil).Times(1)
		d.reputation.EXPECT().ApplyRating(gomock.Any(), responderID, 5).Return(nil).Times(1)

		err := svc.SubmitFeedback(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.FeedbackRequest{Rating: 5, Feedback: "thank you"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("invalid_rating", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newAlertService(ctrl)
		for _, rating := range []int{0, 6, -1} {
			err := svc.SubmitFeedback(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.FeedbackRequest{Rating: rating})
			if !errors.Is(err, e.ErrInvalidRating) {
				t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
			}
		}
	})

	t.Run("not_owner", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

		err := svc.SubmitFeedback(context.Background(), service.Actor{ID: uuid.New()}, alert.ID, domain.FeedbackRequest{Rating: 4})
		if !errors.Is(err, e.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("not_resolved", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)
		d.alerts.EXPECT().SetFeedback(gomock.Any(), alert.ID, 4, "").Return(false, nil).Times(1)

		err := svc.SubmitFeedback(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.FeedbackRequest{Rating: 4})
		if !errors.Is(err, e.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	// A second submission must not reach the responder's reputation: the
	// store reports the rating already landed and the rating is dropped.
	t.Run("repeat_submission_rates_once", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(2)
		first := d.alerts.EXPECT().SetFeedback(gomock.Any(), alert.ID, 5, "great").Return(true, nil).Times(1)
		d.alerts.EXPECT().SetFeedback(gomock.Any(), alert.ID, 1, "changed my mind").Return(false, nil).Times(1).After(first)
		d.reputation.EXPECT().ApplyRating(gomock.Any(), responderID, 5).Return(nil).Times(1)

		if err := svc.SubmitFeedback(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.FeedbackRequest{Rating: 5, Feedback: "great"}); err != nil {
			t.Fatalf("first submission: %v", err)
		}
		err := svc.SubmitFeedback(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.FeedbackRequest{Rating: 1, Feedback: "changed my mind"})
		if !errors.Is(err, e.ErrConflict) {
			t.Fatalf("repeat submission: expected ErrConflict, got %v", err)
		}
	})
}

// --- Location updates ---

func TestAlertService_UpdateLocation(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	alert := &domain.Alert{
		ID:         uuid.New(),
		UserID:     ownerID,
		Status:     domain.AlertResponding,
		Responding: &domain.RespondingVolunteer{VolunteerID: uuid.New()},
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

		var point domain.LocationPoint
		d.alerts.EXPECT().
			AppendLocation(gomock.Any(), alert.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p domain.LocationPoint) (bool, error) {
				point = p
				return true, nil
			}).
			Times(1)
		d.dispatcher.EXPECT().PublishLocationUpdate(gomock.Any(), alert, gomock.Any()).Times(1)

		err := svc.UpdateLocation(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.UpdateLocationRequest{Lat: f64ptr(12.98), Lng: f64ptr(77.6)})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if point.Lat != 12.98 || point.Lng != 77.6 {
			t.Fatalf("unexpected point: %+v", point)
		}
		if point.RecordedAt.IsZero() {
			t.Fatalf("expected recorded_at to be set")
		}
	})

	t.Run("closed_alert", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)
		d.alerts.EXPECT().AppendLocation(gomock.Any(), alert.ID, gomock.Any()).Return(false, nil).Times(1)

		err := svc.UpdateLocation(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.UpdateLocationRequest{Lat: f64ptr(1), Lng: f64ptr(1)})
		if !errors.Is(err, e.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("not_owner", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newAlertService(ctrl)
		d.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil).Times(1)

		err := svc.UpdateLocation(context.Background(), service.Actor{ID: uuid.New()}, alert.ID, domain.UpdateLocationRequest{Lat: f64ptr(1), Lng: f64ptr(1)})
		if !errors.Is(err, e.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing_coordinates", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newAlertService(ctrl)

		err := svc.UpdateLocation(context.Background(), service.Actor{ID: ownerID}, alert.ID, domain.UpdateLocationRequest{Lng: f64ptr(77.6)})
		if !errors.Is(err, e.ErrInvalidCoordinates) {
			t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
		}
	})
}
