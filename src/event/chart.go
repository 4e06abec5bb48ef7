package event

import "gitlab.com/open-soft/go-stats-chart/src/model"

const EventPointsAdded = "event_points_added"
const EventChartUpdated = "event_chart_updated"

type PointsAdded struct {
	Chart  string
	Points []model.DataPoint
}

type ChartUpdated struct {
	Chart model.ChartDefinition
}
