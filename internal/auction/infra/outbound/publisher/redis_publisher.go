package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

// RedisPublisher publica cada mensaje como JSON en el canal pub/sub de Redis.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, channel string, message domain.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	return p.client.Publish(ctx, channel, data).Err()
}

// Verificación estática
var _ domain.Publisher = (*RedisPublisher)(nil)
