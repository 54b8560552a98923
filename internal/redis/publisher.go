package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Publisher pushes typed events to per-subscriber channels. Delivery is
// at-most-once: a subscriber that is not listening simply misses the event.
type Publisher struct {
	client *goredis.Client
}

func NewPublisher(r *Redis) *Publisher {
	return &Publisher{client: r.Client}
}

// envelope is the wire shape on the channel: {"event": ..., "payload": ...}.
type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func channelFor(subscriberID uuid.UUID) string {
	return fmt.Sprintf("user:%s:events", subscriberID)
}

func (p *Publisher) Publish(ctx context.Context, subscriberID uuid.UUID, event string, payload interface{}) error {
	b, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, channelFor(subscriberID), b).Err()
}
