package chart

import (
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
)

type LayoutEngineInterface interface {
	Layout(points []model.DataPoint, config model.ChartConfig) (model.Geometry, error)
}

type LayoutEngine struct {
	Formatter *utils.Formatter
}

// Layout derives the whole render bundle in one pass. The domain is
// extracted once and threaded through every later stage.
func (e *LayoutEngine) Layout(points []model.DataPoint, config model.ChartConfig) (model.Geometry, error) {
	viewport := config.Viewport.WithDefaults()
	grid := config.Grid.WithDefaults()

	if err := validate(viewport, grid, config.Ticks); err != nil {
		return model.Geometry{}, err
	}

	domain, err := ExtractDomain(points)
	if err != nil {
		return model.Geometry{}, err
	}

	projector := NewProjector(domain, viewport)
	seriesList := projector.ProjectAll(Partition(points, config.Categories))

	ticks, err := Ticks(domain, viewport, config.Ticks)
	if err != nil {
		return model.Geometry{}, err
	}

	gridX, gridY := GridLines(grid, viewport)

	return model.Geometry{
		Domain:     domain,
		Viewport:   viewport,
		Series:     seriesList,
		Ticks:      ticks,
		GridLinesX: gridX,
		GridLinesY: gridY,
		Polylines:  Polylines(seriesList, e.Formatter),
		Captions:   Captions(config.Ticks, config.Captions),
	}, nil
}

func validate(viewport model.Viewport, grid model.GridConfig, ticks model.TickConfig) error {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return ErrInvalidViewport
	}

	for _, fraction := range []float64{viewport.WidthFraction, viewport.HeightFraction, grid.WidthFraction, grid.HeightFraction} {
		if fraction <= 0 || fraction > 1 {
			return ErrInvalidViewport
		}
	}

	if ticks.Count < 0 {
		return ErrInvalidTickCount
	}

	return nil
}
