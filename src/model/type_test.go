package model

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestampMilli(t *testing.T) {
	assertion := assert.New(t)

	cases := map[string]int64{
		"1609459200000":             1609459200000,
		"2021-01-01":                1609459200000,
		"2021-01-01 01:00:00":       1609462800000,
		"2021-01-01T01:00:00":       1609462800000,
		"2021-01-01T03:00:00+02:00": 1609462800000,
	}

	for value, expected := range cases {
		parsed, err := ParseTimestampMilli(value)
		assertion.NoError(err, value)
		assertion.Equal(expected, parsed.Value(), value)
	}

	_, err := ParseTimestampMilli("01/02/2021")
	assertion.Error(err)
}

func TestTimestampMilliJson(t *testing.T) {
	assertion := assert.New(t)

	var point DataPoint
	err := json.Unmarshal([]byte(`{"date": "2021-01-01", "value": "2.5", "category": "1"}`), &point)
	assertion.NoError(err)
	assertion.Equal(TimestampMilli(1609459200000), point.Date)
	assertion.Equal(2.5, point.Value.Value())

	err = json.Unmarshal([]byte(`{"date": true, "value": 1}`), &point)
	assertion.Error(err)

	encoded, _ := json.Marshal(DataPoint{Date: 1609459200000, Value: 3, Category: "1"})
	assertion.Equal(`{"date":1609459200000,"value":3,"category":"1"}`, string(encoded))
}

func TestTimestampMilliCompare(t *testing.T) {
	assertion := assert.New(t)
	first := NewTimestampMilli(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	second := first.Add(1000)

	assertion.True(first.Lt(second))
	assertion.True(second.Gt(first))
	assertion.True(first.Lte(first))
	assertion.True(second.Gte(second))
	assertion.True(first.Eq(first))
	assertion.Equal(int64(1000), second.Value()-first.Value())
}

func TestAmountRejectsGarbage(t *testing.T) {
	var amount Amount

	assert.Error(t, json.Unmarshal([]byte(`"ten"`), &amount))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &amount))
}

func TestAmountRejectsNonFiniteNumbers(t *testing.T) {
	assertion := assert.New(t)

	for _, value := range []string{`"NaN"`, `"Inf"`, `"+Inf"`, `"-Inf"`, `"infinity"`} {
		var amount Amount
		assertion.Error(json.Unmarshal([]byte(value), &amount), value)
	}

	var point DataPoint
	err := json.Unmarshal([]byte(`{"date": "2021-01-01", "value": "NaN", "category": "1"}`), &point)
	assertion.ErrorContains(err, "non-finite")

	assertion.True(Amount(2.5).IsFinite())
	assertion.False(Amount(math.Inf(1)).IsFinite())
	assertion.False(IsFinite(math.NaN()))
}

func TestViewportDefaults(t *testing.T) {
	assertion := assert.New(t)

	viewport := Viewport{Width: 1000, Height: 500}.WithDefaults()
	assertion.Equal(800.0, viewport.DisplayWidth())
	assertion.Equal(375.0, viewport.DisplayHeight())
	assertion.Equal(100.0, viewport.MarginX())
	assertion.Equal(62.5, viewport.MarginY())

	grid := GridConfig{LineCount: 10}.WithDefaults()
	assertion.Equal(0.9, grid.WidthFraction)

	captions := AxisCaptions{Y: "sales"}.WithDefaults()
	assertion.Equal("date", captions.X)
	assertion.Equal("sales", captions.Y)
}

func TestChartConfigScan(t *testing.T) {
	assertion := assert.New(t)
	config := ChartConfig{Categories: []string{"1"}, Ticks: TickConfig{Count: 4, Granularity: GranularityYear}}

	value, err := config.Value()
	assertion.NoError(err)

	var scanned ChartConfig
	assertion.NoError(scanned.Scan([]byte(value.(string))))
	assertion.Equal(config, scanned)
}

func TestGranularityIsLabeled(t *testing.T) {
	assertion := assert.New(t)

	assertion.True(GranularityHour.IsLabeled())
	assertion.True(GranularityMonthYear.IsLabeled())
	assertion.False(Granularity("week").IsLabeled())
	assertion.False(Granularity("").IsLabeled())
}
