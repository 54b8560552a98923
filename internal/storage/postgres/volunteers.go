package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Volunteers struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVolunteers(pool *pgxpool.Pool, logger *slog.Logger) *Volunteers {
	return &Volunteers{pool: pool, logger: logger}
}

const volunteerColumns = `
SELECT id,
       name,
       phone,
       verified,
       status,
       on_duty,
       ST_Y(location::geometry) AS lat,
       ST_X(location::geometry) AS lng,
       location_updated_at,
       total_responses,
       successful_assists,
       declined_count,
       avg_response_secs,
       avg_rating,
       rating_count,
       badges,
       created_at
FROM volunteers
`

func (r *Volunteers) Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error) {
	const op = "postgres.Volunteers.Get"

	row := r.pool.QueryRow(ctx, volunteerColumns+"WHERE id = $1", id)

	v, err := scanVolunteer(row)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return v, nil
}

func (r *Volunteers) Create(ctx context.Context, v *domain.Volunteer) error {
	const op = "postgres.Volunteers.Create"

	const query = `
INSERT INTO volunteers (id, name, phone, verified, status, on_duty, location, location_updated_at,
                        total_responses, successful_assists, declined_count,
                        avg_response_secs, avg_rating, rating_count, badges, created_at)
VALUES ($1, $2, $3, $4, $5, $6,
        CASE WHEN $7::float8 IS NULL THEN NULL
             ELSE ST_SetSRID(ST_MakePoint($8, $7), 4326) END,
        $9, $10, $11, $12, $13, $14, $15, $16::jsonb, $17)
`

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	if v.Status == "" {
		v.Status = domain.VolunteerPending
	}

	badges, err := marshalList(v.Badges)
	if err != nil {
		return e.Wrap(op, err)
	}

	_, err = r.pool.Exec(ctx, query,
		v.ID,
		v.Name,
		v.Phone,
		v.Verified,
		v.Status,
		v.OnDuty,
		v.Lat,
		v.Lng,
		v.LocationUpdatedAt,
		v.Stats.TotalResponses,
		v.Stats.SuccessfulAssists,
		v.Stats.DeclinedCount,
		v.Stats.AvgResponseSecs,
		v.Stats.AvgRating,
		v.Stats.RatingCount,
		badges,
		v.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// FindNearby answers the k-nearest query: verified, active, on-duty
// volunteers with a location fix within radiusM meters, ascending by
// distance. Returns empty, not an error, when nobody is in range.
func (r *Volunteers) FindNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.MatchedVolunteer, error) {
	const op = "postgres.Volunteers.FindNearby"

	const query = volunteerColumns + `
WHERE verified
  AND status = 'active'
  AND on_duty
  AND location IS NOT NULL
  AND ST_DWithin(
    location::geography,
    ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
    $3
  )
ORDER BY location::geography <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
LIMIT $4
`

	rows, err := r.pool.Query(ctx, query, lng, lat, radiusM, limit)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	matched := make([]domain.MatchedVolunteer, 0, limit)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		matched = append(matched, domain.MatchedVolunteer{Volunteer: *v})
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return matched, nil
}

// ListOnDuty is the non-geospatial fallback roster: any verified, active,
// on-duty volunteer in stable order, location or not.
func (r *Volunteers) ListOnDuty(ctx context.Context, limit int) ([]domain.Volunteer, error) {
	const op = "postgres.Volunteers.ListOnDuty"

	const query = volunteerColumns + `
WHERE verified AND status = 'active' AND on_duty
ORDER BY created_at, id
LIMIT $1
`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	volunteers := make([]domain.Volunteer, 0, limit)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		volunteers = append(volunteers, *v)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return volunteers, nil
}

func (r *Volunteers) UpdateStats(ctx context.Context, id uuid.UUID, stats domain.VolunteerStats, badges []domain.Badge) error {
	const op = "postgres.Volunteers.UpdateStats"

	const query = `
UPDATE volunteers
SET total_responses    = $2,
    successful_assists = $3,
    declined_count     = $4,
    avg_response_secs  = $5,
    avg_rating         = $6,
    rating_count       = $7,
    badges             = $8::jsonb
WHERE id = $1
`

	badgesJSON, err := marshalList(badges)
	if err != nil {
		return e.Wrap(op, err)
	}

	tag, err := r.pool.Exec(ctx, query,
		id,
		stats.TotalResponses,
		stats.SuccessfulAssists,
		stats.DeclinedCount,
		stats.AvgResponseSecs,
		stats.AvgRating,
		stats.RatingCount,
		badgesJSON,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}

func (r *Volunteers) IncrementDeclined(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Volunteers.IncrementDeclined"

	tag, err := r.pool.Exec(ctx,
		`UPDATE volunteers SET declined_count = declined_count + 1 WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}

func scanVolunteer(row pgx.Row) (*domain.Volunteer, error) {
	var (
		v      domain.Volunteer
		badges []byte
	)

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Phone,
		&v.Verified,
		&v.Status,
		&v.OnDuty,
		&v.Lat,
		&v.Lng,
		&v.LocationUpdatedAt,
		&v.Stats.TotalResponses,
		&v.Stats.SuccessfulAssists,
		&v.Stats.DeclinedCount,
		&v.Stats.AvgResponseSecs,
		&v.Stats.AvgRating,
		&v.Stats.RatingCount,
		&badges,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(badges, &v.Badges); err != nil {
		return nil, err
	}
	return &v, nil
}
