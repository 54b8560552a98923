package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Alerts struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlerts(pool *pgxpool.Pool, logger *slog.Logger) *Alerts {
	return &Alerts{pool: pool, logger: logger}
}

func (r *Alerts) Create(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alerts.Create"

	const query = `
INSERT INTO alerts (id, user_id, geo_point, address, message, type, priority, status,
                    location_history, notified_volunteers, notified_contacts, timeline,
                    created_at, updated_at)
VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, $8, $9,
        $10::jsonb, $11::jsonb, $12::jsonb, $13::jsonb, $14, $15)
`

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	alert.UpdatedAt = alert.CreatedAt

	history, err := marshalList(alert.LocationHistory)
	if err != nil {
		return e.Wrap(op, err)
	}
	volunteers, err := marshalList(alert.NotifiedVolunteers)
	if err != nil {
		return e.Wrap(op, err)
	}
	contacts, err := marshalList(alert.NotifiedContacts)
	if err != nil {
		return e.Wrap(op, err)
	}
	timeline, err := marshalList(alert.Timeline)
	if err != nil {
		return e.Wrap(op, err)
	}

	_, err = r.pool.Exec(ctx, query,
		alert.ID,
		alert.UserID,
		alert.Lng,
		alert.Lat,
		alert.Address,
		alert.Message,
		alert.Type,
		alert.Priority,
		alert.Status,
		history,
		volunteers,
		contacts,
		timeline,
		alert.CreatedAt,
		alert.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const alertColumns = `
SELECT id,
       user_id,
       ST_Y(geo_point::geometry) AS lat,
       ST_X(geo_point::geometry) AS lng,
       address,
       message,
       type,
       priority,
       status,
       location_history,
       notified_volunteers,
       responding,
       notified_contacts,
       timeline,
       resolution,
       response_time_secs,
       total_duration_secs,
       created_at,
       updated_at
FROM alerts
`

func (r *Alerts) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	const op = "postgres.Alerts.Get"

	row := r.pool.QueryRow(ctx, alertColumns+"WHERE id = $1", id)

	alert, err := scanAlert(row)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return alert, nil
}

// SetDispatchResults persists the fan-out outcome recorded during alert
// creation. The alert is not considered fully created until this lands.
func (r *Alerts) SetDispatchResults(ctx context.Context, id uuid.UUID, volunteers []domain.NotifiedVolunteer, contacts []domain.NotifiedContact) error {
	const op = "postgres.Alerts.SetDispatchResults"

	const query = `
UPDATE alerts
SET notified_volunteers = $2::jsonb,
    notified_contacts   = $3::jsonb,
    updated_at          = $4
WHERE id = $1
`

	vols, err := marshalList(volunteers)
	if err != nil {
		return e.Wrap(op, err)
	}
	cons, err := marshalList(contacts)
	if err != nil {
		return e.Wrap(op, err)
	}

	tag, err := r.pool.Exec(ctx, query, id, vols, cons, time.Now().UTC())
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}

// Accept performs the race-safe active -> responding transition. The status
// check lives in the UPDATE itself, so of any number of concurrent accepts
// exactly one sees Accepted; the rest see AlreadyTaken.
func (r *Alerts) Accept(ctx context.Context, id, volunteerID uuid.UUID, now time.Time) (domain.AcceptResult, *domain.Alert, error) {
	const op = "postgres.Alerts.Accept"

	alert, err := r.Get(ctx, id)
	if err != nil {
		return domain.AcceptUnknown, nil, err
	}

	entry := alert.NotifiedEntry(volunteerID)
	if entry == nil {
		return domain.NotEligible, alert, nil
	}
	if alert.Status != domain.AlertActive {
		return domain.AlreadyTaken, alert, nil
	}

	responding := domain.RespondingVolunteer{
		VolunteerID: volunteerID,
		AcceptedAt:  now,
		DistanceM:   entry.DistanceM,
	}
	responseSecs := int64(now.Sub(alert.CreatedAt).Seconds())
	if responseSecs < 0 {
		responseSecs = 0
	}
	timelineEntry := domain.TimelineEntry{
		Action:      "accepted",
		Description: "volunteer accepted the alert",
		Actor:       volunteerID,
		At:          now,
	}

	respondingJSON, err := json.Marshal(responding)
	if err != nil {
		return domain.AcceptUnknown, nil, e.Wrap(op, err)
	}
	timelineJSON, err := marshalList([]domain.TimelineEntry{timelineEntry})
	if err != nil {
		return domain.AcceptUnknown, nil, e.Wrap(op, err)
	}

	const query = `
UPDATE alerts
SET status             = 'responding',
    responding         = $2::jsonb,
    response_time_secs = $3,
    notified_volunteers = (
        SELECT COALESCE(jsonb_agg(
            CASE WHEN elem->>'volunteer_id' = $4
                 THEN jsonb_set(elem, '{status}', '"accepted"')
                 ELSE elem END), '[]'::jsonb)
        FROM jsonb_array_elements(notified_volunteers) AS elem
    ),
    timeline   = timeline || $5::jsonb,
    updated_at = $6
WHERE id = $1 AND status = 'active'
`

	tag, err := r.pool.Exec(ctx, query,
		id,
		respondingJSON,
		responseSecs,
		volunteerID.String(),
		timelineJSON,
		now,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return domain.AcceptUnknown, nil, e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		// Someone else took it (or the alert closed) between the read
		// and the conditional write.
		return domain.AlreadyTaken, alert, nil
	}

	alert.Status = domain.AlertResponding
	alert.Responding = &responding
	alert.ResponseTimeSecs = &responseSecs
	entry.Status = domain.NotifyAccepted
	alert.Timeline = append(alert.Timeline, timelineEntry)
	alert.UpdatedAt = now

	return domain.Accepted, alert, nil
}

func (r *Alerts) MarkDeclined(ctx context.Context, id, volunteerID uuid.UUID) error {
	const op = "postgres.Alerts.MarkDeclined"

	const query = `
UPDATE alerts
SET notified_volunteers = (
        SELECT COALESCE(jsonb_agg(
            CASE WHEN elem->>'volunteer_id' = $2 AND elem->>'status' = 'notified'
                 THEN jsonb_set(elem, '{status}', '"declined"')
                 ELSE elem END), '[]'::jsonb)
        FROM jsonb_array_elements(notified_volunteers) AS elem
    ),
    updated_at = $3
WHERE id = $1
`

	tag, err := r.pool.Exec(ctx, query, id, volunteerID.String(), time.Now().UTC())
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}

func (r *Alerts) Cancel(ctx context.Context, id uuid.UUID, entry domain.TimelineEntry) (bool, error) {
	const op = "postgres.Alerts.Cancel"

	const query = `
UPDATE alerts
SET status     = 'cancelled',
    timeline   = timeline || $2::jsonb,
    updated_at = $3
WHERE id = $1 AND status IN ('active', 'responding')
`

	timelineJSON, err := marshalList([]domain.TimelineEntry{entry})
	if err != nil {
		return false, e.Wrap(op, err)
	}

	tag, err := r.pool.Exec(ctx, query, id, timelineJSON, entry.At)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Alerts) Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution, durationSecs int64, entry domain.TimelineEntry) (bool, error) {
	const op = "postgres.Alerts.Resolve"

	const query = `
UPDATE alerts
SET status              = 'resolved',
    resolution          = $2::jsonb,
    total_duration_secs = $3,
    timeline            = timeline || $4::jsonb,
    updated_at          = $5
WHERE id = $1 AND status IN ('active', 'responding')
`

	resJSON, err := json.Marshal(res)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	timelineJSON, err := marshalList([]domain.TimelineEntry{entry})
	if err != nil {
		return false, e.Wrap(op, err)
	}

	tag, err := r.pool.Exec(ctx, query, id, resJSON, durationSecs, timelineJSON, entry.At)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Alerts) SetFeedback(ctx context.Context, id uuid.UUID, rating int, feedback string) (bool, error) {
	const op = "postgres.Alerts.SetFeedback"

	// The rating guard makes feedback single-shot: once a rating is in the
	// resolution document, further submissions match zero rows.
	const query = `
UPDATE alerts
SET resolution = resolution || $2::jsonb,
    updated_at = $3
WHERE id = $1
  AND status = 'resolved'
  AND resolution IS NOT NULL
  AND resolution->>'rating' IS NULL
`

	patch, err := json.Marshal(map[string]any{
		"rating":   rating,
		"feedback": feedback,
	})
	if err != nil {
		return false, e.Wrap(op, err)
	}

	tag, err := r.pool.Exec(ctx, query, id, patch, time.Now().UTC())
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Alerts) AppendLocation(ctx context.Context, id uuid.UUID, point domain.LocationPoint) (bool, error) {
	const op = "postgres.Alerts.AppendLocation"

	const query = `
UPDATE alerts
SET geo_point        = ST_SetSRID(ST_MakePoint($2, $3), 4326),
    location_history = location_history || $4::jsonb,
    updated_at       = $5
WHERE id = $1 AND status IN ('active', 'responding')
`

	pointJSON, err := marshalList([]domain.LocationPoint{point})
	if err != nil {
		return false, e.Wrap(op, err)
	}

	tag, err := r.pool.Exec(ctx, query, id, point.Lng, point.Lat, pointJSON, point.RecordedAt)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ExpireStale ages out open alerts older than the cutoff. Idempotent:
// already expired alerts no longer match the status filter.
func (r *Alerts) ExpireStale(ctx context.Context, olderThan time.Time) (int64, error) {
	const op = "postgres.Alerts.ExpireStale"

	const query = `
UPDATE alerts
SET status     = 'expired',
    timeline   = timeline || $2::jsonb,
    updated_at = $3
WHERE status IN ('pending', 'active', 'responding') AND created_at < $1
`

	now := time.Now().UTC()
	timelineJSON, err := marshalList([]domain.TimelineEntry{{
		Action:      "expired",
		Description: "alert aged out by the expiry sweeper",
		At:          now,
	}})
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	tag, err := r.pool.Exec(ctx, query, olderThan, timelineJSON, now)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return tag.RowsAffected(), nil
}

func (r *Alerts) DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	const op = "postgres.Alerts.DeleteOlderThan"

	tag, err := r.pool.Exec(ctx, `DELETE FROM alerts WHERE created_at < $1`, olderThan)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return tag.RowsAffected(), nil
}

func scanAlert(row pgx.Row) (*domain.Alert, error) {
	var (
		a          domain.Alert
		history    []byte
		volunteers []byte
		responding []byte
		contacts   []byte
		timeline   []byte
		resolution []byte
	)

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Lat,
		&a.Lng,
		&a.Address,
		&a.Message,
		&a.Type,
		&a.Priority,
		&a.Status,
		&history,
		&volunteers,
		&responding,
		&contacts,
		&timeline,
		&resolution,
		&a.ResponseTimeSecs,
		&a.TotalDurationSecs,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(history, &a.LocationHistory); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(volunteers, &a.NotifiedVolunteers); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(contacts, &a.NotifiedContacts); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(timeline, &a.Timeline); err != nil {
		return nil, err
	}
	if responding != nil {
		if err := json.Unmarshal(responding, &a.Responding); err != nil {
			return nil, err
		}
	}
	if resolution != nil {
		if err := json.Unmarshal(resolution, &a.Resolution); err != nil {
			return nil, err
		}
	}

	return &a, nil
}

// marshalList marshals a slice to jsonb, mapping nil to '[]' so jsonb
// concatenation never sees SQL NULL.
func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(items)
}
