package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/4pillsAday/dive-globe/internal/dto"
)

// ErrLiveUnavailable is returned by Subscribe when no broker is configured
var ErrLiveUnavailable = errors.New("live updates are not configured")

// EventPublisher announces review and reaction changes to live subscribers
type EventPublisher interface {
	Publish(ctx context.Context, event *dto.LiveEvent)
}

// EventSubscriber streams the events of one dive site
type EventSubscriber interface {
	// Subscribe returns raw JSON events until ctx is done or the returned
	// close function is called
	Subscribe(ctx context.Context, siteID uuid.UUID) (<-chan []byte, func() error, error)
}

// SiteChannel is the pub/sub channel of a dive site
func SiteChannel(siteID uuid.UUID) string {
	return fmt.Sprintf("dive:%s:events", siteID.String())
}

// RedisEvents implements EventPublisher and EventSubscriber over redis pub/sub
type RedisEvents struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisEvents creates RedisEvents. With
// a nil client events are dropped and Subscribe reports ErrLiveUnavailable.
func NewRedisEvents(client *redis.Client, logger *zap.Logger) *RedisEvents {
	return &RedisEvents{client: client, logger: logger}
}

// Publish is best-effort: a failure is logged and never fails the write
func (e *RedisEvents) Publish(ctx context.Context, event *dto.LiveEvent) {
	if e.client == nil || event == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		e.logger.Error("Failed to marshal live event", zap.String("type", event.Type), zap.Error(err))
		return
	}

	if err := e.client.Publish(ctx, SiteChannel(event.SiteID), data).Err(); err != nil {
		e.logger.Warn("Failed to publish live event",
			zap.String("type", event.Type),
			zap.String("site_id", event.SiteID.String()),
			zap.Error(err),
		)
	}
}

func (e *RedisEvents) Subscribe(ctx context.Context, siteID uuid.UUID) (<-chan []byte, func() error, error) {
	if e.client == nil {
		return nil, nil, ErrLiveUnavailable
	}

	pubsub := e.client.Subscribe(ctx, SiteChannel(siteID))
	// wait for the subscription confirmation so errors surface here
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, pubsub.Close, nil
}
