package events

import (
	"context"
	"errors"
	"io"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MessageHandler define la interfaz que debe cumplir cualquier consumidor de eventos (como AuctionConsumer).
type MessageHandler interface {
	HandleMessage(ctx context.Context, key string, payload []byte)
}

// MessageReader es la parte de *kafka.Reader que usamos.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var _ MessageReader = (*kafka.Reader)(nil)

// ConsumerAdapter es el "oído" que escucha en Kafka.
// Como mucho workers mensajes se procesan a la vez; sin orden entre mensajes distintos.
type ConsumerAdapter struct {
	reader  MessageReader
	handler MessageHandler
	workers int
	log     *zap.Logger
}

func NewConsumerAdapter(reader MessageReader, handler MessageHandler, workers int, log *zap.Logger) *ConsumerAdapter {
	if workers < 1 {
		workers = 1
	}
	return &ConsumerAdapter{
		reader:  reader,
		handler: handler,
		workers: workers,
		log:     log,
	}
}

// Start inicia el bucle de consumo de mensajes en una goroutine.
func (c *ConsumerAdapter) Start(ctx context.Context) {
	c.log.Info("🎧 Iniciando consumidor de Kafka...", zap.Int("workers", c.workers))
	go c.Run(ctx)
}

// Run consume hasta que se cancela el contexto o se cierra el reader,
// y espera a que terminen los mensajes en curso.
func (c *ConsumerAdapter) Run(ctx context.Context) {
	var g errgroup.Group
	g.SetLimit(c.workers)
	defer g.Wait()

	for {
		// ReadMessage es una llamada bloqueante.
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.log.Info("Consumidor de Kafka detenido.")
				return
			}
			c.log.Error("Error al leer mensaje de Kafka", zap.Error(err))
			continue
		}

		// Go bloquea mientras todos los workers estén ocupados.
		g.Go(func() error {
			c.handler.HandleMessage(ctx, string(msg.Key), msg.Value)
			return nil
		})
	}
}
