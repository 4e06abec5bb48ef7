package model

type Domain struct {
	MinTime  TimestampMilli `json:"minTime"`
	MaxTime  TimestampMilli `json:"maxTime"`
	MinValue float64        `json:"minValue"`
	MaxValue float64        `json:"maxValue"`
}

func (d Domain) TimeRange() int64 {
	return d.MaxTime.Value() - d.MinTime.Value()
}

func (d Domain) ValueRange() float64 {
	return d.MaxValue - d.MinValue
}

type Tick struct {
	Date  TimestampMilli `json:"date"`
	X     float64        `json:"x"`
	Label string         `json:"label,omitempty"`
}

type Polyline struct {
	Category    string    `json:"category"`
	Key         string    `json:"key"`
	Coordinates []float64 `json:"coordinates"`
	Points      string    `json:"points"`
}

type Geometry struct {
	Domain     Domain        `json:"domain"`
	Viewport   Viewport      `json:"viewport"`
	Series     []Series      `json:"series"`
	Ticks      []Tick        `json:"ticks"`
	GridLinesX []float64     `json:"gridLinesX"`
	GridLinesY []float64     `json:"gridLinesY"`
	Polylines  []Polyline    `json:"polylines"`
	Captions   *AxisCaptions `json:"captions,omitempty"`
}

type ChartGeometry struct {
	Chart    string   `json:"chart"`
	Title    string   `json:"title"`
	Geometry Geometry `json:"geometry"`
}
