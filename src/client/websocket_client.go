package client

import (
	"encoding/json"
	"github.com/gorilla/websocket"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
	"log"
	"sync/atomic"
)

const streamBatchSize = 24

// GetStreamBatch splits chart keys into subscription batches of at most size keys.
func GetStreamBatch(chartKeys []string, size int) [][]string {
	if size <= 0 {
		size = streamBatchSize
	}

	streamBatch := make([][]string, 0)
	streams := make([]string, 0)

	for _, chartKey := range chartKeys {
		streams = append(streams, chartKey)

		if len(streams) >= size {
			streamBatch = append(streamBatch, streams)
			streams = make([]string, 0)
		}
	}

	if len(streams) > 0 {
		streamBatch = append(streamBatch, streams)
	}

	return streamBatch
}

// FeedClient consumes an upstream websocket that publishes model.PointEvent messages.
type FeedClient struct {
	Address     string
	TimeService utils.TimeServiceInterface
	Connected   atomic.Bool
}

func (f *FeedClient) IsConnected() bool {
	return f.Connected.Load()
}

// Listen dials the feed and forwards every message to channel, reconnecting
// after a short pause whenever the connection drops.
func (f *FeedClient) Listen(channel chan<- []byte, streams []string, connectionId int64) *websocket.Conn {
	connection, _, err := websocket.DefaultDialer.Dial(f.Address, nil)
	if err != nil {
		f.Connected.Store(false)
		log.Printf("Feed [err_1] WS Events [%s]: %s, wait and reconnect...", f.Address, err.Error())
		f.TimeService.WaitSeconds(3)
		connectionId++

		return f.Listen(channel, streams, connectionId)
	}

	f.Connected.Store(true)

	go func() {
		for {
			_, message, err := connection.ReadMessage()
			if err != nil {
				f.Connected.Store(false)
				log.Printf("Feed [err_2] WS Events, read [%s]: %s", f.Address, err.Error())

				_ = connection.Close()
				log.Printf("Feed [err_2] WS Events, wait and reconnect...")
				f.TimeService.WaitSeconds(3)
				connectionId++
				f.Listen(channel, streams, connectionId)
				return
			}

			channel <- message
		}
	}()

	if len(streams) > 0 {
		socketRequest := model.SocketStreamsRequest{
			Id:     connectionId,
			Method: model.StreamMethodSubscribe,
			Params: streams,
		}
		serialized, _ := json.Marshal(socketRequest)
		_ = connection.WriteMessage(websocket.TextMessage, serialized)
	}

	return connection
}
