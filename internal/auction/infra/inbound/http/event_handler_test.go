package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/davicafu/apollo-events/internal/auction/application"
	"github.com/davicafu/apollo-events/tests/mocks"
)

func setupRouter() (*gin.Engine, *mocks.DummyPublisher) {
	gin.SetMode(gin.TestMode)
	publisher := mocks.NewDummyPublisher()
	service := application.NewEventRouter(publisher, &mocks.SequentialIDs{}, zap.NewNop())

	r := gin.New()
	RegisterEventRoutes(r, NewEventHandler(service))
	return r, publisher
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPublishEvent_Accepted(t *testing.T) {
	r, publisher := setupRouter()

	w := post(r, "/events/AuctionEndedEvent", `{"auction_id":"A1"}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"data":{"kind":"AuctionEndedEvent"}}`, w.Body.String())
	assert.Equal(t, []string{"auction.A1", "user"}, publisher.Channels())
}

func TestPublishEvent_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		fail   bool
		status int
		code   string
	}{
		{"tipo desconocido", "/events/AuctionPaused", `{"auction_id":"A1"}`, false, http.StatusNotFound, "unknown_event_kind"},
		{"evento mal formado", "/events/LotExtendedEvent", `{"auction_id":"A1"}`, false, http.StatusBadRequest, "malformed_event"},
		{"fallo de publicación", "/events/AuctionKilledEvent", `{"auction_id":"A1"}`, true, http.StatusBadGateway, "publish_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, publisher := setupRouter()
			if tt.fail {
				publisher.FailOn["auction.A1"] = errors.New("down")
			}

			w := post(r, tt.path, tt.body)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"]["message"])
			assert.Equal(t, tt.code, body["error"]["code"])
			assert.Empty(t, publisher.Published)
		})
	}
}

func TestPreviewEvent_DoesNotPublish(t *testing.T) {
	r, publisher := setupRouter()

	w := post(r, "/events/BidPlacedEvent/preview", `{
		"auction_id": "A1", "lot_number": 3, "lot_id": "L1", "lot_title": "Clock",
		"current_bid": {"amount": {"value": 10, "currency": "USD"}, "user_id": "U9", "created_at": "t1"},
		"previous_bid": {"amount": {"value": 5, "currency": "USD"}, "user_id": "U2", "created_at": "t0"}
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, publisher.Published)

	var body struct {
		Data []struct {
			Channel string                 `json:"channel"`
			Message map[string]interface{} `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "auction.A1.lot.3", body.Data[0].Channel)
	assert.Equal(t, "notify_bid_update", body.Data[0].Message["type"])
	assert.Equal(t, "user.U2", body.Data[1].Channel)
	assert.Equal(t, "out_bid", body.Data[1].Message["type"])
}
