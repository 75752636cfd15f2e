package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedDomain "github.com/davicafu/apollo-events/internal/shared/domain"

	_ "modernc.org/sqlite"
)

// setupSQLite abre una base en memoria con una única conexión (cada conexión tendría su propia BD).
func setupSQLite(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitOutboxSQLite(context.Background(), db))
	return db
}

func newOutboxEvent(kind, payload string, createdAt time.Time) sharedDomain.OutboxEvent {
	return sharedDomain.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "auction",
		AggregateID:   "A1",
		EventType:     kind,
		Payload:       []byte(payload),
		CreatedAt:     createdAt,
	}
}

func TestOutboxRepoSQLite_FetchAndMark(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewOutboxRepoSQLite(setupSQLite(t))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := newOutboxEvent("AuctionStartedEvent", `{"auction_id":"A1"}`, base)
	second := newOutboxEvent("BidPlacedEvent", `{"auction_id":"A1","lot_number":1}`, base.Add(time.Minute))
	third := newOutboxEvent("AuctionEndedEvent", `{"auction_id":"A1"}`, base.Add(2*time.Minute))
	for _, evt := range []sharedDomain.OutboxEvent{third, first, second} {
		require.NoError(t, repo.SaveOutboxEvent(ctx, evt))
	}

	// Act
	pending, err := repo.FetchPendingOutbox(ctx, 2)

	// Assert
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, "AuctionStartedEvent", pending[0].EventType)
	assert.JSONEq(t, `{"auction_id":"A1"}`, string(pending[0].Payload))
	assert.Equal(t, second.ID, pending[1].ID)

	require.NoError(t, repo.MarkOutboxProcessed(ctx, first.ID))
	require.NoError(t, repo.MarkOutboxProcessed(ctx, second.ID))

	pending, err = repo.FetchPendingOutbox(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, third.ID, pending[0].ID)
}

func TestOutboxRepoSQLite_MarkUnknown(t *testing.T) {
	repo := NewOutboxRepoSQLite(setupSQLite(t))

	err := repo.MarkOutboxProcessed(context.Background(), uuid.New())

	assert.ErrorIs(t, err, sharedDomain.ErrOutboxEventNotFound)
}

func TestOutboxRepoSQLite_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewOutboxRepoSQLite(setupSQLite(t))
	evt := newOutboxEvent("UserLotWon", `{}`, time.Now())

	require.NoError(t, repo.SaveOutboxEvent(ctx, evt))
	err := repo.SaveOutboxEvent(ctx, evt)

	assert.Error(t, err)
}
