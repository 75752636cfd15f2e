package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davicafu/apollo-events/internal/auction/domain"
	"github.com/davicafu/apollo-events/tests/mocks"
)

var testMessage = domain.AuctionMessage{AuctionUUID: "A1", Type: domain.TypeAuctionKilled, ID: "id-1"}

// setupMiniRedis levanta un Redis en memoria y un cliente apuntando a él.
func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisPublisher_Publish(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, client := setupMiniRedis(t)

	sub := client.Subscribe(ctx, "auction.A1")
	defer sub.Close()
	_, err := sub.Receive(ctx) // confirmación de suscripción
	require.NoError(t, err)

	pub := NewRedisPublisher(client)

	// Act
	err = pub.Publish(ctx, "auction.A1", testMessage)

	// Assert
	require.NoError(t, err)
	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "auction.A1", msg.Channel)
	assert.JSONEq(t, `{"auctionUuid":"A1","type":"auction_killed","id":"id-1"}`, msg.Payload)
}

func TestRedisPublisher_ServerDown(t *testing.T) {
	mr, client := setupMiniRedis(t)
	mr.Close()

	err := NewRedisPublisher(client).Publish(context.Background(), "auction.A1", testMessage)

	assert.Error(t, err)
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	pub := NewKafkaPublisher(writer)

	err := pub.Publish(context.Background(), "user.U2", testMessage)

	require.NoError(t, err)
	require.Len(t, writer.msgs, 1)
	msg := writer.msgs[0]
	assert.Equal(t, "user.U2", string(msg.Key))
	assert.Equal(t, []kafka.Header{{Key: ChannelHeader, Value: []byte("user.U2")}}, msg.Headers)
	assert.JSONEq(t, `{"auctionUuid":"A1","type":"auction_killed","id":"id-1"}`, string(msg.Value))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	cause := errors.New("broker unavailable")
	pub := NewKafkaPublisher(&fakeWriter{err: cause})

	err := pub.Publish(context.Background(), "user", testMessage)

	assert.ErrorIs(t, err, cause)
}

func TestLoggingPublisher(t *testing.T) {
	t.Run("delega y registra en debug", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		next := mocks.NewDummyPublisher()
		pub := NewLoggingPublisher(next, zap.New(core))

		err := pub.Publish(context.Background(), "auction.A1", testMessage)

		require.NoError(t, err)
		assert.Equal(t, []string{"auction.A1"}, next.Channels())
		entries := logs.FilterMessage("Message published").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "auction.A1", entries[0].ContextMap()["channel"])
	})

	t.Run("propaga el error", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		next := new(mocks.MockPublisher)
		cause := errors.New("down")
		next.On("Publish", mock.Anything, "user", testMessage).Return(cause).Once()
		pub := NewLoggingPublisher(next, zap.New(core))

		err := pub.Publish(context.Background(), "user", testMessage)

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 1, logs.FilterMessage("Error publishing message").Len())
		next.AssertExpectations(t)
	})
}
