package chart

import (
	"gitlab.com/open-soft/go-stats-chart/src/model"
)

// Projector maps (time, value) pairs to pixel coordinates. A single instance
// carries one set of scale factors, so every series projected with it stays
// comparable on the same chart.
type Projector struct {
	domain        model.Domain
	scaleX        float64
	scaleY        float64
	offsetX       float64
	offsetY       float64
	displayHeight float64
}

func NewProjector(domain model.Domain, viewport model.Viewport) Projector {
	projector := Projector{
		domain:        domain,
		offsetX:       viewport.MarginX(),
		offsetY:       viewport.MarginY(),
		displayHeight: viewport.DisplayHeight(),
	}

	// A zero range keeps the scale at zero and collapses points onto the margin.
	if timeRange := domain.TimeRange(); timeRange > 0 {
		projector.scaleX = viewport.DisplayWidth() / float64(timeRange)
	}
	if valueRange := domain.ValueRange(); valueRange > 0 {
		projector.scaleY = viewport.DisplayHeight() / valueRange
	}

	return projector
}

func (p Projector) ScaleX() float64 {
	return p.scaleX
}

func (p Projector) ScaleY() float64 {
	return p.scaleY
}

func (p Projector) X(date model.TimestampMilli) float64 {
	return float64(date.Value()-p.domain.MinTime.Value())*p.scaleX + p.offsetX
}

// Y is inverted: larger values end up higher on screen.
func (p Projector) Y(value float64) float64 {
	return p.displayHeight - (value-p.domain.MinValue)*p.scaleY + p.offsetY
}

// Project returns a copy of the series with pixel coordinates filled in.
func (p Projector) Project(series model.Series) model.Series {
	projected := model.Series{
		Category: series.Category,
		Points:   make([]model.ProjectedPoint, 0, len(series.Points)),
	}

	for _, point := range series.Points {
		projected.Points = append(projected.Points, model.ProjectedPoint{
			DataPoint: point.DataPoint,
			X:         p.X(point.Date),
			Y:         p.Y(point.Value.Value()),
		})
	}

	return projected
}

func (p Projector) ProjectAll(seriesList []model.Series) []model.Series {
	projected := make([]model.Series, 0, len(seriesList))
	for _, series := range seriesList {
		projected = append(projected, p.Project(series))
	}

	return projected
}
