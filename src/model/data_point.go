package model

type DataPoint struct {
	Id       string         `json:"id,omitempty"`
	Date     TimestampMilli `json:"date"`
	Value    Amount         `json:"value"`
	Category string         `json:"category"`
}

type ProjectedPoint struct {
	DataPoint
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Series struct {
	Category string           `json:"category"`
	Points   []ProjectedPoint `json:"points"`
}

func (s Series) IsEmpty() bool {
	return len(s.Points) == 0
}

// CanDrawLine reports whether the series has enough points to connect.
func (s Series) CanDrawLine() bool {
	return len(s.Points) >= 2
}
