package events

import (
	"encoding/json"
	"time"
)

// Base de todos los eventos de integración que llegan por Kafka.
// Type es el kind del evento de dominio (ej. "BidPlacedEvent").
type IntegrationEvent struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"` // contenido específico del evento
}

// NewIntegrationEvent envuelve un payload ya serializado.
func NewIntegrationEvent(kind string, data []byte) IntegrationEvent {
	return IntegrationEvent{
		Type:      kind,
		Timestamp: time.Now().UTC(),
		Data:      json.RawMessage(data),
	}
}
