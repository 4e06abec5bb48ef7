package chart

import (
	"gitlab.com/open-soft/go-stats-chart/src/model"
)

// Partition splits points into one series per category, in the order the
// categories are given. Points with an unknown category are dropped.
func Partition(points []model.DataPoint, categories []string) []model.Series {
	seriesList := make([]model.Series, 0, len(categories))
	indexMap := make(map[string]int)

	for _, category := range categories {
		if _, exist := indexMap[category]; exist {
			continue
		}
		indexMap[category] = len(seriesList)
		seriesList = append(seriesList, model.Series{
			Category: category,
			Points:   make([]model.ProjectedPoint, 0),
		})
	}

	for _, point := range points {
		index, exist := indexMap[point.Category]
		if !exist {
			continue
		}
		seriesList[index].Points = append(seriesList[index].Points, model.ProjectedPoint{DataPoint: point})
	}

	return seriesList
}
