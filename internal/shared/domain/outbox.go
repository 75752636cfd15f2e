package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrOutboxEventNotFound = errors.New("outbox event not found")

// OutboxEvent es un evento de dominio pendiente de enrutar.
// EventType es el kind que entiende el EventRouter (ej. "BidPlacedEvent").
type OutboxEvent struct {
	ID            uuid.UUID       `json:"id"`
	AggregateType string          `json:"aggregate_type"` // ej. "auction", "lot"
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	CreatedAt     time.Time       `json:"created_at"`
	Processed     bool            `json:"processed"`
}

// OutboxRepository contiene solo lo que necesitan el relayer y los productores.
type OutboxRepository interface {
	SaveOutboxEvent(ctx context.Context, evt OutboxEvent) error
	FetchPendingOutbox(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error
}
