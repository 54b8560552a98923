package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// RosterCache keeps the on-duty verified roster warm for the matcher's
// fallback path, so a sparse geo index does not turn every SOS into a full
// roster scan.
type RosterCache struct {
	client *goredis.Client
	key    string
}

func NewRosterCache(r *Redis) *RosterCache {
	return &RosterCache{
		client: r.Client,
		key:    "volunteers:on_duty",
	}
}

// Get returns the cached roster, or nil on a miss.
func (c *RosterCache) Get(ctx context.Context) ([]domain.Volunteer, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var roster []domain.Volunteer
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

func (c *RosterCache) Set(ctx context.Context, roster []domain.Volunteer, ttl time.Duration) error {
	b, err := json.Marshal(roster)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
