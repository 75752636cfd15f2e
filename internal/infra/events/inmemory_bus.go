package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

var ErrBusClosed = errors.New("event bus closed")

// Delivery es lo que recibe un suscriptor: canal + mensaje ya serializado.
type Delivery struct {
	Channel string
	Payload []byte
}

// InMemoryEventBus es un sink pub/sub dentro del proceso (modo local y tests).
// Un suscriptor lento pierde mensajes en lugar de bloquear al publicador.
type InMemoryEventBus struct {
	subscribers []chan Delivery
	mu          sync.RWMutex
	once        sync.Once
	closed      bool
}

// Verifica en tiempo de compilación que cumple la interfaz
var _ domain.Publisher = (*InMemoryEventBus)(nil)

func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make([]chan Delivery, 0),
	}
}

// Publish entrega el mensaje a todos los suscriptores, en el orden de llamada.
func (b *InMemoryEventBus) Publish(ctx context.Context, channel string, message domain.Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	d := Delivery{Channel: channel, Payload: payload}
	for _, sub := range b.subscribers {
		select {
		case sub <- d:
		default:
		}
	}
	return nil
}

// Subscribe registra un nuevo oyente que recibe todos los canales.
func (b *InMemoryEventBus) Subscribe(bufferSize int) <-chan Delivery {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Delivery, bufferSize)
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Close cierra todos los canales de suscripción. Publicar después devuelve ErrBusClosed.
func (b *InMemoryEventBus) Close() {
	b.once.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.closed = true
		for _, sub := range b.subscribers {
			close(sub)
		}
		b.subscribers = nil
	})
}
