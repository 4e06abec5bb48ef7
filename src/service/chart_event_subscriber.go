package service

import (
	"gitlab.com/open-soft/go-stats-chart/src/event"
	"log"
)

type BroadcasterInterface interface {
	Broadcast(chartKey string)
}

// ChartEventSubscriber pushes fresh geometry to stream subscribers whenever
// a chart's points or definition change.
type ChartEventSubscriber struct {
	StreamHub BroadcasterInterface
}

func (c ChartEventSubscriber) GetSubscribedEvents() map[string]func(interface{}) {
	return map[string]func(interface{}){
		event.EventPointsAdded:  c.OnPointsAdded,
		event.EventChartUpdated: c.OnChartUpdated,
	}
}

func (c ChartEventSubscriber) OnPointsAdded(eventModel interface{}) {
	e, ok := eventModel.(event.PointsAdded)
	if !ok {
		return
	}

	log.Printf("[%s] %d points added", e.Chart, len(e.Points))
	c.StreamHub.Broadcast(e.Chart)
}

func (c ChartEventSubscriber) OnChartUpdated(eventModel interface{}) {
	e, ok := eventModel.(event.ChartUpdated)
	if !ok {
		return
	}

	c.StreamHub.Broadcast(e.Chart.Key)
}
