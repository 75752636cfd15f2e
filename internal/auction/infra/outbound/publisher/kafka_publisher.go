package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

// ChannelHeader lleva el nombre de canal lógico dentro del mensaje Kafka.
const ChannelHeader = "channel"

// MessageWriter es la parte de *kafka.Writer que usamos.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher escribe en un único topic; el canal viaja como key y como header,
// así los mensajes de un mismo canal caen en la misma partición.
type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, channel string, message domain.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(channel),
		Value: data,
		Headers: []kafka.Header{
			{Key: ChannelHeader, Value: []byte(channel)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

// Verificación estática
var _ domain.Publisher = (*KafkaPublisher)(nil)
var _ MessageWriter = (*kafka.Writer)(nil)
