package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	sharedDomain "github.com/davicafu/apollo-events/internal/shared/domain"
)

// MockOutboxRepository simula el repo de outbox
type MockOutboxRepository struct {
	mock.Mock
}

func (m *MockOutboxRepository) SaveOutboxEvent(ctx context.Context, evt sharedDomain.OutboxEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]sharedDomain.OutboxEvent), args.Error(1)
}

func (m *MockOutboxRepository) MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRouter simula el EventRouter para los adapters inbound.
type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) Route(ctx context.Context, kind string, raw []byte) error {
	args := m.Called(ctx, kind, raw)
	return args.Error(0)
}

var _ sharedDomain.OutboxRepository = (*MockOutboxRepository)(nil)
