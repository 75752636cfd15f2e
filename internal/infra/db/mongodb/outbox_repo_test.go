package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	sharedDomain "github.com/davicafu/apollo-events/internal/shared/domain"
)

func TestMongoOutboxEvent_RoundTrip(t *testing.T) {
	evt := sharedDomain.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "lot",
		AggregateID:   "L1",
		EventType:     "LotWithdrawnEvent",
		Payload:       []byte(`{"auction_id":"A1","lot_number":2}`),
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	got, err := fromMongoOutboxEvent(ptr(toMongoOutboxEvent(evt)))

	require.NoError(t, err)
	assert.Equal(t, evt, got)
}

func TestFromMongoOutboxEvent_InvalidID(t *testing.T) {
	_, err := fromMongoOutboxEvent(&mongoOutboxEvent{ID: "not-a-uuid"})

	assert.Error(t, err)
}

func TestOutboxRepoMongoDB_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI no está configurada, saltando test de integración con MongoDB")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	dbName := "apollo_events_test"
	require.NoError(t, client.Database(dbName).Collection("outbox").Drop(ctx))

	repo, err := NewOutboxRepoMongoDB(ctx, client, dbName)
	require.NoError(t, err)

	evt := sharedDomain.OutboxEvent{
		ID: uuid.New(), AggregateType: "auction", AggregateID: "A1",
		EventType: "AuctionKilledEvent", Payload: []byte(`{"auction_id":"A1"}`),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.SaveOutboxEvent(ctx, evt))

	pending, err := repo.FetchPendingOutbox(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, evt.ID, pending[0].ID)

	require.NoError(t, repo.MarkOutboxProcessed(ctx, evt.ID))
	pending, err = repo.FetchPendingOutbox(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func ptr[T any](v T) *T { return &v }
