package chart

import (
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
)

// Polylines connects every projected series that has at least two points.
// Shorter series are drawn as markers only.
func Polylines(seriesList []model.Series, formatter *utils.Formatter) []model.Polyline {
	lines := make([]model.Polyline, 0, len(seriesList))

	for _, series := range seriesList {
		if !series.CanDrawLine() {
			continue
		}

		coordinates := make([]float64, 0, len(series.Points)*2)
		for _, point := range series.Points {
			coordinates = append(coordinates, point.X, point.Y)
		}

		key := series.Points[len(series.Points)-1].Id
		if key == "" {
			key = series.Category
		}

		lines = append(lines, model.Polyline{
			Category:    series.Category,
			Key:         key,
			Coordinates: coordinates,
			Points:      formatter.FormatPolyline(coordinates),
		})
	}

	return lines
}
