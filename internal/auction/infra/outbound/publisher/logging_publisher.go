package publisher

import (
	"context"

	"go.uber.org/zap"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

// LoggingPublisher registra cada publicación (canal + mensaje) y delega en next.
type LoggingPublisher struct {
	next domain.Publisher
	log  *zap.Logger
}

func NewLoggingPublisher(next domain.Publisher, log *zap.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, log: log}
}

func (p *LoggingPublisher) Publish(ctx context.Context, channel string, message domain.Message) error {
	if err := p.next.Publish(ctx, channel, message); err != nil {
		p.log.Error("Error publishing message",
			zap.String("channel", channel),
			zap.String("type", message.MessageType()),
			zap.String("id", message.MessageID()),
			zap.Error(err),
		)
		return err
	}

	p.log.Debug("Message published",
		zap.String("channel", channel),
		zap.Any("message", message),
	)
	return nil
}

var _ domain.Publisher = (*LoggingPublisher)(nil)
