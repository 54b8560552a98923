package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Contacts struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewContacts(pool *pgxpool.Pool, logger *slog.Logger) *Contacts {
	return &Contacts{pool: pool, logger: logger}
}

// Create inserts a contact while holding the per-user invariants: at most
// five active contacts, and a new primary demotes the previous one. Both
// checks run inside one transaction.
func (r *Contacts) Create(ctx context.Context, c *domain.EmergencyContact) error {
	const op = "postgres.Contacts.Create"

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	if c.Active {
		var active int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM (
				SELECT 1 FROM contacts WHERE user_id = $1 AND active FOR UPDATE
			) locked`,
			c.UserID,
		).Scan(&active)
		if err != nil {
			r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		if active >= domain.MaxActiveContacts {
			return e.Wrap(op, e.ErrConflict)
		}
	}

	if c.IsPrimary {
		if _, err := tx.Exec(ctx,
			`UPDATE contacts SET is_primary = FALSE WHERE user_id = $1 AND is_primary`,
			c.UserID,
		); err != nil {
			r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}

	const insert = `
INSERT INTO contacts (id, user_id, name, phone, relationship, is_primary, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	if _, err := tx.Exec(ctx, insert,
		c.ID, c.UserID, c.Name, c.Phone, c.Relationship, c.IsPrimary, c.Active, c.CreatedAt,
	); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *Contacts) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error) {
	const op = "postgres.Contacts.ListActiveByUser"

	const query = `
SELECT id, user_id, name, phone, relationship, is_primary, active, created_at
FROM contacts
WHERE user_id = $1 AND active
ORDER BY is_primary DESC, created_at
`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	contacts := make([]domain.EmergencyContact, 0, domain.MaxActiveContacts)
	for rows.Next() {
		var c domain.EmergencyContact
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Relationship, &c.IsPrimary, &c.Active, &c.CreatedAt,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return contacts, nil
}

// SetPrimary promotes one contact and demotes the rest in a single
// statement, keeping exactly one primary per user.
func (r *Contacts) SetPrimary(ctx context.Context, userID, contactID uuid.UUID) error {
	const op = "postgres.Contacts.SetPrimary"

	const query = `
UPDATE contacts
SET is_primary = (id = $2)
WHERE user_id = $1 AND active
`

	tag, err := r.pool.Exec(ctx, query, userID, contactID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}
