package alerts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/internal/middleware"
	"github.com/gitsunil577/SafeHer-Backend/internal/service"
	"github.com/gitsunil577/SafeHer-Backend/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertHandler interface {
	Create(ctx context.Context, actor service.Actor, req domain.CreateAlertRequest) (domain.CreateAlertResponse, error)
	Get(ctx context.Context, actor service.Actor, id uuid.UUID) (*domain.Alert, error)
	Accept(ctx context.Context, actor service.Actor, id uuid.UUID) (*domain.Alert, error)
	Decline(ctx context.Context, actor service.Actor, id uuid.UUID) error
	Cancel(ctx context.Context, actor service.Actor, id uuid.UUID) error
	Resolve(ctx context.Context, actor service.Actor, id uuid.UUID, req domain.ResolveAlertRequest) error
	SubmitFeedback(ctx context.Context, actor service.Actor, id uuid.UUID, req domain.FeedbackRequest) error
	UpdateLocation(ctx context.Context, actor service.Actor, id uuid.UUID, req domain.UpdateLocationRequest) error
}

type Handler struct {
	logger *slog.Logger
	alerts AlertHandler
}

func NewHandler(logger *slog.Logger, alerts AlertHandler) *Handler {
	return &Handler{logger: logger, alerts: alerts}
}

func (h *Handler) AlertCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req domain.CreateAlertRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.alerts.Create(r.Context(), actor, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) AlertGet(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	alert, err := h.alerts.Get(r.Context(), actor, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) AlertAccept(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	alert, err := h.alerts.Accept(r.Context(), actor, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"alert_id":    alert.ID,
		"status":      alert.Status,
		"accepted_at": alert.Responding.AcceptedAt,
	})
}

func (h *Handler) AlertDecline(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	if err := h.alerts.Decline(r.Context(), actor, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "declined"})
}

func (h *Handler) AlertCancel(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	if err := h.alerts.Cancel(r.Context(), actor, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *Handler) AlertResolve(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	var req domain.ResolveAlertRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.alerts.Resolve(r.Context(), actor, id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "resolved"})
}

func (h *Handler) AlertFeedback(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	var req domain.FeedbackRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.alerts.SubmitFeedback(r.Context(), actor, id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "feedback recorded"})
}

func (h *Handler) AlertLocation(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLocationRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.alerts.UpdateLocation(r.Context(), actor, id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "location updated"})
}

func (h *Handler) actorAndID(w http.ResponseWriter, r *http.Request) (service.Actor, uuid.UUID, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return service.Actor{}, uuid.Nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid alert id"})
		return service.Actor{}, uuid.Nil, false
	}

	return actor, id, true
}

// decode parses the body strictly: unknown fields and trailing garbage are
// both rejected, then the struct's validation tags run.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	if err := validator.ValidateStruct(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}
