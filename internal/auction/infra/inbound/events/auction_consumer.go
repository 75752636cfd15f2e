package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/apollo-events/internal/auction/application"
	"github.com/davicafu/apollo-events/internal/auction/domain"
	infraEvents "github.com/davicafu/apollo-events/internal/infra/events"
	sharedEvents "github.com/davicafu/apollo-events/internal/shared/events"
)

// AuctionConsumer desenvuelve el IntegrationEvent y lo pasa al router.
type AuctionConsumer struct {
	router  application.Router
	timeout time.Duration
	log     *zap.Logger
}

func NewAuctionConsumer(router application.Router, timeout time.Duration, logger *zap.Logger) *AuctionConsumer {
	return &AuctionConsumer{
		router:  router,
		timeout: timeout,
		log:     logger,
	}
}

func (c *AuctionConsumer) HandleMessage(ctx context.Context, key string, payload []byte) {
	var base sharedEvents.IntegrationEvent
	if err := json.Unmarshal(payload, &base); err != nil {
		c.log.Warn("Failed to unmarshal integration event", zap.String("key", key), zap.Error(err))
		return
	}

	c.withContext(ctx, func(ctxRoute context.Context) error {
		return c.router.Route(ctxRoute, base.Type, base.Data)
	}, base.Type, key)
}

// Helper para ejecutar la acción con contexto limitado y log según el tipo de error
func (c *AuctionConsumer) withContext(ctx context.Context, action func(ctx context.Context) error, kind, key string) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err := action(ctx)
	switch {
	case err == nil:
		c.log.Debug("Event routed via Kafka", zap.String("kind", kind), zap.String("key", key))
	case errors.Is(err, domain.ErrUnknownEventKind):
		c.log.Warn("Unknown event type", zap.String("kind", kind))
	case errors.Is(err, domain.ErrMalformedEvent):
		c.log.Warn("Malformed event dropped", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
	default:
		c.log.Error("Failed to publish event", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
	}
}

// Verificación estática
var _ infraEvents.MessageHandler = (*AuctionConsumer)(nil)
