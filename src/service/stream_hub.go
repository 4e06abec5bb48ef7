package service

import (
	"encoding/json"
	"github.com/gorilla/websocket"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"log"
	"sync"
)

type streamSubscriber struct {
	conn      *websocket.Conn
	charts    map[string]bool
	writeLock sync.Mutex
}

func (s *streamSubscriber) write(message interface{}) error {
	serialized, err := json.Marshal(message)
	if err != nil {
		return err
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	return s.conn.WriteMessage(websocket.TextMessage, serialized)
}

// StreamHub fans chart geometry out to websocket subscribers.
type StreamHub struct {
	ChartService GeometryProviderInterface

	lock        sync.RWMutex
	subscribers map[*websocket.Conn]*streamSubscriber
}

// Serve reads subscription requests from conn until it fails, then drops it.
func (h *StreamHub) Serve(conn *websocket.Conn) {
	subscriber := &streamSubscriber{
		conn:   conn,
		charts: make(map[string]bool),
	}

	h.lock.Lock()
	if h.subscribers == nil {
		h.subscribers = make(map[*websocket.Conn]*streamSubscriber)
	}
	h.subscribers[conn] = subscriber
	h.lock.Unlock()

	defer h.remove(conn)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Stream [err_1] read: %s", err.Error())
			}
			return
		}

		var request model.SocketStreamsRequest
		if err := json.Unmarshal(message, &request); err != nil {
			_ = subscriber.write(model.StreamError{Code: 400, Message: err.Error()})
			continue
		}

		switch {
		case request.IsSubscribe():
			h.lock.Lock()
			for _, chartKey := range request.Params {
				subscriber.charts[chartKey] = true
			}
			h.lock.Unlock()

			for _, chartKey := range request.Params {
				h.push(subscriber, chartKey)
			}
		case request.IsUnsubscribe():
			h.lock.Lock()
			for _, chartKey := range request.Params {
				delete(subscriber.charts, chartKey)
			}
			h.lock.Unlock()
		default:
			_ = subscriber.write(model.StreamError{Code: 400, Message: "unsupported method " + request.Method})
		}
	}
}

// Broadcast lays the chart out once and sends it to everyone subscribed.
func (h *StreamHub) Broadcast(chartKey string) {
	h.lock.RLock()
	targets := make([]*streamSubscriber, 0)
	for _, subscriber := range h.subscribers {
		if subscriber.charts[chartKey] {
			targets = append(targets, subscriber)
		}
	}
	h.lock.RUnlock()

	if len(targets) == 0 {
		return
	}

	geometry, err := h.ChartService.GetGeometry(chartKey, nil)
	if err != nil {
		log.Printf("[%s] broadcast skipped: %s", chartKey, err.Error())
		return
	}

	for _, subscriber := range targets {
		err := subscriber.write(model.GeometryEvent{Chart: chartKey, Geometry: geometry.Geometry})
		if err != nil {
			log.Printf("[%s] Stream [err_2] write: %s", chartKey, err.Error())
		}
	}
}

func (h *StreamHub) Count() int {
	h.lock.RLock()
	defer h.lock.RUnlock()

	return len(h.subscribers)
}

func (h *StreamHub) push(subscriber *streamSubscriber, chartKey string) {
	geometry, err := h.ChartService.GetGeometry(chartKey, nil)
	if err != nil {
		_ = subscriber.write(model.StreamError{Code: 404, Message: err.Error()})
		return
	}

	_ = subscriber.write(model.GeometryEvent{Chart: chartKey, Geometry: geometry.Geometry})
}

func (h *StreamHub) remove(conn *websocket.Conn) {
	h.lock.Lock()
	delete(h.subscribers, conn)
	h.lock.Unlock()

	_ = conn.Close()
}
