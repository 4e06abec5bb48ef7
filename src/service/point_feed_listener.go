package service

import (
	"encoding/json"
	"errors"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"log"
)

type PointWriterInterface interface {
	AddPoints(chartKey string, points []model.DataPoint) ([]model.DataPoint, error)
}

// PointFeedListener stores point events received from the upstream feed.
type PointFeedListener struct {
	ChartService PointWriterInterface
	Channel      chan []byte
}

func (p *PointFeedListener) ListenAll() {
	for message := range p.Channel {
		_ = p.Handle(message)
	}
}

func (p *PointFeedListener) Handle(message []byte) error {
	var pointEvent model.PointEvent
	err := json.Unmarshal(message, &pointEvent)
	if err != nil {
		log.Printf("Feed: malformed message skipped: %s", err.Error())
		return err
	}

	if pointEvent.Chart == "" || len(pointEvent.Points) == 0 {
		return errors.New("feed event has no chart or points")
	}

	_, err = p.ChartService.AddPoints(pointEvent.Chart, pointEvent.Points)
	if err != nil {
		log.Printf("[%s] feed points rejected: %s", pointEvent.Chart, err.Error())
		return err
	}

	return nil
}
