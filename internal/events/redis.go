package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// envelope is the wire form published on redis channels.
type envelope struct {
	ID        string                 `json:"id"`
	Type      Type                   `json:"type"`
	Payload   map[string]interface{} `json:"payload"`
	Published time.Time              `json:"published_at"`
}

// RedisPublisher fans events out over redis pub/sub, one channel per type.
type RedisPublisher struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisPublisher(rdb *redis.Client, prefix string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, prefix: prefix}
}

// NewRedisClient creates and verifies a redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// Channel returns the channel name for an event type.
func (p *RedisPublisher) Channel(t Type) string {
	if p.prefix == "" {
		return string(t)
	}
	return p.prefix + ":" + string(t)
}

func (p *RedisPublisher) Publish(ctx context.Context, eventType Type, payload map[string]interface{}) error {
	body, err := json.Marshal(envelope{
		ID:        uuid.NewString(),
		Type:      eventType,
		Payload:   payload,
		Published: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventType, err)
	}
	return p.rdb.Publish(ctx, p.Channel(eventType), body).Err()
}

// LogPublisher only logs. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, eventType Type, payload map[string]interface{}) error {
	log.Printf("[events] %s %v", eventType, payload)
	return nil
}

// Multi publishes to every wrapped publisher and returns the first error.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, eventType Type, payload map[string]interface{}) error {
	var first error
	for _, p := range m {
		if err := p.Publish(ctx, eventType, payload); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewPublisher returns a redis publisher that also logs when redisURL is set
// and reachable, else a log-only publisher. The returned func closes redis.
func NewPublisher(ctx context.Context, redisURL, prefix string) (Publisher, func()) {
	if redisURL == "" {
		return LogPublisher{}, func() {}
	}
	rdb, err := NewRedisClient(ctx, redisURL)
	if err != nil {
		log.Printf("[events] redis unavailable, falling back to log publisher: %v", err)
		return LogPublisher{}, func() {}
	}
	return Multi{NewRedisPublisher(rdb, prefix), LogPublisher{}}, func() { _ = rdb.Close() }
}
