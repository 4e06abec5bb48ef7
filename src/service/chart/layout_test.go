package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
)

func scenarioConfig() model.ChartConfig {
	return model.ChartConfig{
		Categories: []string{"1", "2", "3"},
		Viewport:   scenarioViewport(),
		Ticks:      utcTicks(4, model.GranularityMonthYear),
		Grid:       model.GridConfig{LineCount: 10},
	}
}

func TestLayoutBuildsFullBundle(t *testing.T) {
	assertion := assert.New(t)
	engine := LayoutEngine{Formatter: &utils.Formatter{}}

	points := []model.DataPoint{
		point(t, "a", "2021-01-01", 0, "1"),
		point(t, "b", "2021-01-15", 4, "2"),
		point(t, "c", "2021-02-01", 6, "1"),
		point(t, "d", "2021-02-10", 2, "7"),
		point(t, "e", "2021-03-01", 10, "1"),
	}

	geometry, err := engine.Layout(points, scenarioConfig())
	require.NoError(t, err)

	assertion.Equal(points[0].Date, geometry.Domain.MinTime)
	assertion.Equal(points[4].Date, geometry.Domain.MaxTime)
	assertion.Len(geometry.Series, 3)
	assertion.Len(geometry.Series[0].Points, 3)
	assertion.Len(geometry.Series[1].Points, 1)
	assertion.Len(geometry.Series[2].Points, 0)
	assertion.Len(geometry.Polylines, 1)
	assertion.Equal("e", geometry.Polylines[0].Key)
	assertion.Len(geometry.Ticks, 5)
	assertion.Equal("Jan 2021", geometry.Ticks[0].Label)
	assertion.Len(geometry.GridLinesX, 8)
	assertion.Len(geometry.GridLinesY, 8)
	assertion.Nil(geometry.Captions)

	first := geometry.Series[0].Points[0]
	last := geometry.Series[0].Points[2]
	assertion.InDelta(100.0, first.X, 1e-9)
	assertion.InDelta(900.0, last.X, 1e-9)
	assertion.InDelta(geometry.Ticks[0].X, first.X, 1e-9)
}

func TestLayoutAppliesDefaultFractions(t *testing.T) {
	assertion := assert.New(t)
	engine := LayoutEngine{Formatter: &utils.Formatter{}}

	config := scenarioConfig()
	config.Viewport = model.Viewport{Width: 1000, Height: 500}

	geometry, err := engine.Layout([]model.DataPoint{point(t, "", "2021-01-01", 1, "1")}, config)
	assertion.NoError(err)
	assertion.Equal(0.8, geometry.Viewport.WidthFraction)
	assertion.Equal(0.75, geometry.Viewport.HeightFraction)
	assertion.Equal(100.0, geometry.Series[0].Points[0].X)
	assertion.Equal(437.5, geometry.Series[0].Points[0].Y)
}

func TestLayoutCaptionMode(t *testing.T) {
	assertion := assert.New(t)
	engine := LayoutEngine{Formatter: &utils.Formatter{}}

	config := scenarioConfig()
	config.Ticks.Granularity = "quarter"
	config.Captions = model.AxisCaptions{X: "Date", Y: "Storage"}

	geometry, err := engine.Layout([]model.DataPoint{
		point(t, "", "2021-01-01", 1, "1"),
		point(t, "", "2021-06-01", 2, "1"),
	}, config)
	assertion.NoError(err)
	assertion.Len(geometry.Ticks, 5)
	for _, tick := range geometry.Ticks {
		assertion.Empty(tick.Label)
	}
	assertion.Equal(&model.AxisCaptions{X: "Date", Y: "Storage"}, geometry.Captions)
}

func TestLayoutStructuralErrors(t *testing.T) {
	assertion := assert.New(t)
	engine := LayoutEngine{Formatter: &utils.Formatter{}}
	points := []model.DataPoint{point(t, "", "2021-01-01", 1, "1")}

	_, err := engine.Layout(nil, scenarioConfig())
	assertion.ErrorIs(err, ErrEmptyInput)

	config := scenarioConfig()
	config.Viewport.Width = 0
	_, err = engine.Layout(points, config)
	assertion.ErrorIs(err, ErrInvalidViewport)

	config = scenarioConfig()
	config.Viewport.HeightFraction = 1.5
	_, err = engine.Layout(points, config)
	assertion.ErrorIs(err, ErrInvalidViewport)

	config = scenarioConfig()
	config.Grid.WidthFraction = -0.1
	_, err = engine.Layout(points, config)
	assertion.ErrorIs(err, ErrInvalidViewport)

	config = scenarioConfig()
	config.Ticks.Count = -2
	_, err = engine.Layout(points, config)
	assertion.ErrorIs(err, ErrInvalidTickCount)
}

func TestLayoutIsDeterministic(t *testing.T) {
	assertion := assert.New(t)
	engine := LayoutEngine{Formatter: &utils.Formatter{}}

	points := []model.DataPoint{
		point(t, "a", "2021-01-01", 3, "1"),
		point(t, "b", "2021-01-02", 5, "2"),
		point(t, "c", "2021-01-03", 1, "1"),
	}

	first, err := engine.Layout(points, scenarioConfig())
	assertion.NoError(err)
	second, err := engine.Layout(points, scenarioConfig())
	assertion.NoError(err)
	assertion.Equal(first, second)
}

func TestLayoutRejectsNonFiniteValue(t *testing.T) {
	assertion := assert.New(t)
	engine := LayoutEngine{Formatter: &utils.Formatter{}}

	points := []model.DataPoint{
		point(t, "a", "2021-01-01", 1, "1"),
		point(t, "b", "2021-01-02", math.NaN(), "1"),
		point(t, "c", "2021-01-03", 5, "2"),
	}

	geometry, err := engine.Layout(points, scenarioConfig())
	assertion.ErrorIs(err, ErrInvalidValue)
	assertion.Empty(geometry.Series)
	assertion.Empty(geometry.Polylines)
}
