package chart

import (
	"testing"
	"time"

	"gitlab.com/open-soft/go-stats-chart/src/model"
)

func date(t *testing.T, value string) model.TimestampMilli {
	t.Helper()
	parsed, err := model.ParseTimestampMilli(value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}

	return parsed
}

func point(t *testing.T, id string, day string, value float64, category string) model.DataPoint {
	return model.DataPoint{
		Id:       id,
		Date:     date(t, day),
		Value:    model.Amount(value),
		Category: category,
	}
}

func scenarioViewport() model.Viewport {
	return model.Viewport{
		Width:          1000,
		Height:         500,
		WidthFraction:  0.8,
		HeightFraction: 0.75,
	}
}

func utcTicks(count int, granularity model.Granularity) model.TickConfig {
	return model.TickConfig{
		Count:       count,
		Granularity: granularity,
		Location:    time.UTC,
	}
}
