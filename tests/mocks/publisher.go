package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

// MockPublisher simula el sink con expectativas de testify.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, message domain.Message) error {
	args := m.Called(ctx, channel, message)
	return args.Error(0)
}

// Delivery es una publicación registrada por DummyPublisher.
type Delivery struct {
	Channel string
	Message domain.Message
	JSON    string
}

// DummyPublisher guarda todo lo publicado. Si FailOn contiene el canal, devuelve Err.
type DummyPublisher struct {
	Published []Delivery
	FailOn    map[string]error
	mu        sync.Mutex
}

func NewDummyPublisher() *DummyPublisher {
	return &DummyPublisher{FailOn: make(map[string]error)}
}

func (p *DummyPublisher) Publish(ctx context.Context, channel string, message domain.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err, ok := p.FailOn[channel]; ok {
		return err
	}

	// Guardar una versión JSON como evidencia
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	p.Published = append(p.Published, Delivery{Channel: channel, Message: message, JSON: string(data)})
	return nil
}

// Channels devuelve los canales en orden de publicación.
func (p *DummyPublisher) Channels() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.Published))
	for _, d := range p.Published {
		out = append(out, d.Channel)
	}
	return out
}

// Snapshot devuelve una copia de lo publicado hasta ahora.
func (p *DummyPublisher) Snapshot() []Delivery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Delivery(nil), p.Published...)
}

// SequentialIDs genera ids deterministas: id-1, id-2, ...
type SequentialIDs struct {
	n  int
	mu sync.Mutex
}

func (s *SequentialIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

var (
	_ domain.Publisher   = (*MockPublisher)(nil)
	_ domain.Publisher   = (*DummyPublisher)(nil)
	_ domain.IDGenerator = (*SequentialIDs)(nil)
)
