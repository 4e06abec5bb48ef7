package chart

import (
	"time"

	"gitlab.com/open-soft/go-stats-chart/src/model"
)

// Ticks returns count+1 evenly spaced ticks starting at the domain's minimum
// time. They are placed with the same x transform the data points use.
func Ticks(domain model.Domain, viewport model.Viewport, config model.TickConfig) ([]model.Tick, error) {
	if config.Count < 0 {
		return nil, ErrInvalidTickCount
	}

	projector := NewProjector(domain, viewport)
	location := config.GetLocation()

	var increment int64
	if config.Count > 0 {
		increment = ceilDiv(domain.TimeRange(), int64(config.Count))
	}

	ticks := make([]model.Tick, 0, config.Count+1)
	date := domain.MinTime
	for i := 0; i <= config.Count; i++ {
		if i > 0 {
			date = date.Add(increment)
		}
		ticks = append(ticks, model.Tick{
			Date:  date,
			X:     projector.X(date),
			Label: FormatTickLabel(date, config.Granularity, location),
		})
	}

	return ticks, nil
}

// FormatTickLabel renders a tick date for the granularity. Modes without
// per-tick labels return an empty string. Year labels are always taken in
// UTC, matching how date-only input is parsed.
func FormatTickLabel(date model.TimestampMilli, granularity model.Granularity, location *time.Location) string {
	t := date.Time().In(location)

	switch granularity {
	case model.GranularityHour:
		return t.Format("15:04:05")
	case model.GranularityMonth:
		return t.Format("Jan")
	case model.GranularityMonthYear:
		return t.Format("Jan 2006")
	case model.GranularityYear:
		return date.Time().UTC().Format("2006")
	}

	return ""
}

// Captions returns the static axis captions used when ticks are unlabeled.
func Captions(config model.TickConfig, captions model.AxisCaptions) *model.AxisCaptions {
	if config.Granularity.IsLabeled() {
		return nil
	}

	withDefaults := captions.WithDefaults()

	return &withDefaults
}

// GridLines spaces reference lines over the grid fraction of the canvas. The
// first two slots are skipped to keep the axis origin clear.
func GridLines(config model.GridConfig, viewport model.Viewport) ([]float64, []float64) {
	gridX := make([]float64, 0)
	gridY := make([]float64, 0)
	if config.LineCount <= 2 {
		return gridX, gridY
	}

	config = config.WithDefaults()
	spacerX := viewport.Width * config.WidthFraction / float64(config.LineCount)
	spacerY := viewport.Height * config.HeightFraction / float64(config.LineCount)

	for i := 2; i < config.LineCount; i++ {
		gridX = append(gridX, spacerX*float64(i))
		gridY = append(gridY, spacerY*float64(i))
	}

	return gridX, gridY
}

func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}

	return (a + b - 1) / b
}
