package alerts_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/gitsunil577/SafeHer-Backend/internal/api/handlers/http/alerts"
	mock_alerts "github.com/gitsunil577/SafeHer-Backend/internal/api/handlers/http/alerts/mocks"
	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/internal/middleware"
	"github.com/gitsunil577/SafeHer-Backend/internal/service"
	"github.com/gitsunil577/SafeHer-Backend/pkg/e"
)

const testAPIKey = "test-key"

func f64ptr(v float64) *float64 { return &v }

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestRouter mounts the handler behind the real identity middleware, so
// requests carry the same trusted headers production sees.
func newTestRouter(h *alerts.Handler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1/alerts", func(r chi.Router) {
		r.Use(middleware.Identity(testAPIKey))
		r.Post("/", h.AlertCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.AlertGet)
			r.Post("/accept", h.AlertAccept)
			r.Post("/decline", h.AlertDecline)
			r.Post("/cancel", h.AlertCancel)
			r.Post("/resolve", h.AlertResolve)
			r.Post("/feedback", h.AlertFeedback)
			r.Put("/location", h.AlertLocation)
		})
	})
	return r
}

func authed(req *http.Request, actor service.Actor) *http.Request {
	req.Header.Set("X-User-ID", actor.ID.String())
	if actor.Name != "" {
		req.Header.Set("X-User-Name", actor.Name)
	}
	if actor.Role != "" {
		req.Header.Set("X-User-Role", actor.Role)
	}
	return req
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestAlertCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlertHandler(ctrl)
	router := newTestRouter(alerts.NewHandler(newTestLogger(), svc))

	actor := service.Actor{ID: uuid.New(), Name: "Priya"}
	wantID := uuid.New()

	svc.EXPECT().
		Create(gomock.Any(), actor, domain.CreateAlertRequest{Lat: f64ptr(12.9716), Lng: f64ptr(77.5946), Message: "help"}).
		Return(domain.CreateAlertResponse{AlertID: wantID, VolunteersNotified: 3, ContactsNotified: 2}, nil).
		Times(1)

	body := `{"lat":12.9716,"lng":77.5946,"message":"help"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(body)), actor)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.CreateAlertResponse](t, rr)
	if got.AlertID != wantID || got.VolunteersNotified != 3 || got.ContactsNotified != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestAlertCreate_MissingIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlertHandler(ctrl)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(`{"lat":1,"lng":1}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAlertCreate_ForgedAdminRole_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlertHandler(ctrl)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(`{"lat":1,"lng":1}`))
	req.Header.Set("X-User-ID", uuid.New().String())
	req.Header.Set("X-User-Role", "admin")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d", http.StatusForbidden, rr.Code)
	}
}

func TestAlertCreate_BadBody_400(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"invalid_json", `{bad json`},
		{"unknown_field", `{"lat":1,"lng":1,"bogus":true}`},
		{"trailing_garbage", `{"lat":1,"lng":1}{"more":1}`},
		{"lat_out_of_range", `{"lat":95,"lng":1}`},
		{"bad_type", `{"lat":1,"lng":1,"type":"alien"}`},
		{"missing_coordinates", `{"message":"help"}`},
		{"missing_lng", `{"lat":12.9716,"message":"help"}`},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlertHandler(ctrl)))

			req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(c.body)), service.Actor{ID: uuid.New()})
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAlertGet_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not_found", e.ErrNotFound, http.StatusNotFound},
		{"forbidden", e.ErrForbidden, http.StatusForbidden},
		{"internal_masked", errors.New("pg: connection refused"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_alerts.NewMockAlertHandler(ctrl)
			router := newTestRouter(alerts.NewHandler(newTestLogger(), svc))

			actor := service.Actor{ID: uuid.New()}
			id := uuid.New()
			svc.EXPECT().Get(gomock.Any(), actor, id).Return(nil, c.err).Times(1)

			req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/alerts/"+id.String(), nil), actor)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != c.wantStatus {
				t.Fatalf("expected %d got %d, body=%s", c.wantStatus, rr.Code, rr.Body.String())
			}
			if c.wantStatus == http.StatusInternalServerError {
				got := decodeJSON[map[string]string](t, rr)
				if got["error"] != "internal error" {
					t.Fatalf("internal detail must be masked, got %q", got["error"])
				}
			}
		})
	}
}

func TestAlertGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlertHandler(ctrl)))

	req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/alerts/not-a-uuid", nil), service.Actor{ID: uuid.New()})
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAlertAccept_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlertHandler(ctrl)
	router := newTestRouter(alerts.NewHandler(newTestLogger(), svc))

	actor := service.Actor{ID: uuid.New()}
	acceptedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	alert := &domain.Alert{
		ID:     uuid.New(),
		Status: domain.AlertResponding,
		Responding: &domain.RespondingVolunteer{
			VolunteerID: actor.ID,
			AcceptedAt:  acceptedAt,
		},
	}
	svc.EXPECT().Accept(gomock.Any(), actor, alert.ID).Return(alert, nil).Times(1)

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+alert.ID.String()+"/accept", nil), actor)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["status"] != string(domain.AlertResponding) {
		t.Fatalf("expected responding status, got %q", got["status"])
	}
	if got["alert_id"] != alert.ID.String() {
		t.Fatalf("alert_id mismatch: %q", got["alert_id"])
	}
}

func TestAlertAccept_Conflict_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlertHandler(ctrl)
	router := newTestRouter(alerts.NewHandler(newTestLogger(), svc))

	actor := service.Actor{ID: uuid.New()}
	id := uuid.New()
	svc.EXPECT().Accept(gomock.Any(), actor, id).Return(nil, e.ErrAlreadyTaken).Times(1)

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+id.String()+"/accept", nil), actor)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d", http.StatusConflict, rr.Code)
	}
}

func TestAlertDecline_NotNotified_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlertHandler(ctrl)
	router := newTestRouter(alerts.NewHandler(newTestLogger(), svc))

	actor := service.Actor{ID: uuid.New()}
	id := uuid.New()
	svc.EXPECT().Decline(gomock.Any(), actor, id).Return(e.ErrNotNotified).Times(1)

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+id.String()+"/decline", nil), actor)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d", http.StatusForbidden, rr.Code)
	}
}

func TestAlertResolve_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlertHandler(ctrl)
	router := newTestRouter(alerts.NewHandler(newTestLogger(), svc))

	actor := service.Actor{ID: uuid.New()}
	id := uuid.New()
	svc.EXPECT().
		Resolve(gomock.Any(), actor, id, domain.ResolveAlertRequest{Notes: "all safe"}).
		Return(nil).
		Times(1)

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+id.String()+"/resolve",
		bytes.NewBufferString(`{"notes":"all safe"}`)), actor)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAlertFeedback_InvalidRating_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlertHandler(ctrl)))

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+uuid.New().String()+"/feedback",
		bytes.NewBufferString(`{"rating":9}`)), service.Actor{ID: uuid.New()})
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAlertLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlertHandler(ctrl)
	router := newTestRouter(alerts.NewHandler(newTestLogger(), svc))

	actor := service.Actor{ID: uuid.New()}
	id := uuid.New()
	svc.EXPECT().
		UpdateLocation(gomock.Any(), actor, id, domain.UpdateLocationRequest{Lat: f64ptr(12.98), Lng: f64ptr(77.6)}).
		Return(nil).
		Times(1)

	req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/alerts/"+id.String()+"/location",
		bytes.NewBufferString(`{"lat":12.98,"lng":77.6}`)), actor)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}
