package idgen

import (
	"github.com/google/uuid"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

// UUIDGenerator genera UUIDv4 aleatorios. No tiene estado, así que es seguro entre goroutines.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Verificación estática
var _ domain.IDGenerator = UUIDGenerator{}
