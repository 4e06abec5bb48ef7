package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
)

func TestGetStreamBatch(t *testing.T) {
	assertion := assert.New(t)

	batches := GetStreamBatch([]string{"a", "b", "c", "d", "e"}, 2)
	assertion.Equal([][]string{{"a", "b"}, {"c", "d"}, {"e"}}, batches)

	assertion.Empty(GetStreamBatch([]string{}, 2))

	keys := make([]string, 30)
	for i := range keys {
		keys[i] = string(rune('a' + i%26))
	}
	batches = GetStreamBatch(keys, 0)
	assertion.Len(batches, 2)
	assertion.Len(batches[0], 24)
	assertion.Len(batches[1], 6)
}

func TestFeedClientListen(t *testing.T) {
	assertion := assert.New(t)
	requests := make(chan model.SocketStreamsRequest, 1)
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var request model.SocketStreamsRequest
		_ = json.Unmarshal(message, &request)
		requests <- request

		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"chart":"sales","points":[]}`))
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	feed := FeedClient{
		Address:     "ws" + strings.TrimPrefix(server.URL, "http"),
		TimeService: &utils.TimeHelper{},
	}
	channel := make(chan []byte, 1)

	connection := feed.Listen(channel, []string{"sales", "revenue"}, 5)
	require.NotNil(t, connection)
	assertion.True(feed.IsConnected())

	select {
	case request := <-requests:
		assertion.Equal(int64(5), request.Id)
		assertion.True(request.IsSubscribe())
		assertion.Equal([]string{"sales", "revenue"}, request.Params)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription request was not sent")
	}

	select {
	case message := <-channel:
		assertion.Contains(string(message), `"chart":"sales"`)
	case <-time.After(2 * time.Second):
		t.Fatal("feed message was not forwarded")
	}
}
