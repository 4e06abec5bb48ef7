package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

const DefaultWidthFraction = 0.8
const DefaultHeightFraction = 0.75
const DefaultGridFraction = 0.9

const DefaultXAxisCaption = "date"
const DefaultYAxisCaption = "value"

type Viewport struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	WidthFraction  float64 `json:"widthFraction"`
	HeightFraction float64 `json:"heightFraction"`
}

func (v Viewport) DisplayWidth() float64 {
	return v.Width * v.WidthFraction
}

func (v Viewport) DisplayHeight() float64 {
	return v.Height * v.HeightFraction
}

func (v Viewport) MarginX() float64 {
	return (v.Width - v.DisplayWidth()) / 2
}

func (v Viewport) MarginY() float64 {
	return (v.Height - v.DisplayHeight()) / 2
}

// WithDefaults fills unset fractions with the data-display defaults.
func (v Viewport) WithDefaults() Viewport {
	if v.WidthFraction == 0 {
		v.WidthFraction = DefaultWidthFraction
	}
	if v.HeightFraction == 0 {
		v.HeightFraction = DefaultHeightFraction
	}

	return v
}

type GridConfig struct {
	LineCount      int     `json:"lineCount"`
	WidthFraction  float64 `json:"widthFraction"`
	HeightFraction float64 `json:"heightFraction"`
}

func (g GridConfig) WithDefaults() GridConfig {
	if g.WidthFraction == 0 {
		g.WidthFraction = DefaultGridFraction
	}
	if g.HeightFraction == 0 {
		g.HeightFraction = DefaultGridFraction
	}

	return g
}

type TickConfig struct {
	Count       int            `json:"count"`
	Granularity Granularity    `json:"granularity"`
	Timezone    string         `json:"timezone,omitempty"`
	Location    *time.Location `json:"-"`
}

// GetLocation resolves the zone tick labels are rendered in, falling back to local time.
func (t TickConfig) GetLocation() *time.Location {
	if t.Location != nil {
		return t.Location
	}

	if t.Timezone != "" {
		location, err := time.LoadLocation(t.Timezone)
		if err == nil {
			return location
		}
	}

	return time.Local
}

type AxisCaptions struct {
	X string `json:"x"`
	Y string `json:"y"`
}

func (a AxisCaptions) WithDefaults() AxisCaptions {
	if a.X == "" {
		a.X = DefaultXAxisCaption
	}
	if a.Y == "" {
		a.Y = DefaultYAxisCaption
	}

	return a
}

type ChartConfig struct {
	Categories []string     `json:"categories"`
	Viewport   Viewport     `json:"viewport"`
	Ticks      TickConfig   `json:"ticks"`
	Grid       GridConfig   `json:"grid"`
	Captions   AxisCaptions `json:"captions"`
}

func (c *ChartConfig) Scan(src interface{}) error {
	return json.Unmarshal(src.([]byte), &c)
}

func (c ChartConfig) Value() (driver.Value, error) {
	jsonV, err := json.Marshal(c)
	return string(jsonV), err
}
