package chart

import (
	"fmt"

	"gitlab.com/open-soft/go-stats-chart/src/model"
)

// ExtractDomain takes the time bounds from the first and last point and the
// value bounds from the whole set. Points must already be ordered by date.
func ExtractDomain(points []model.DataPoint) (model.Domain, error) {
	if len(points) == 0 {
		return model.Domain{}, ErrEmptyInput
	}

	domain := model.Domain{
		MinTime:  points[0].Date,
		MaxTime:  points[len(points)-1].Date,
		MinValue: points[0].Value.Value(),
		MaxValue: points[0].Value.Value(),
	}

	for index, point := range points {
		if index > 0 && point.Date.Lt(points[index-1].Date) {
			return model.Domain{}, fmt.Errorf("%w: point %d precedes point %d", ErrUnorderedInput, index, index-1)
		}
		if !point.Value.IsFinite() {
			return model.Domain{}, fmt.Errorf("%w: point %d has value %v", ErrInvalidValue, index, point.Value.Value())
		}

		domain.MinValue = min(domain.MinValue, point.Value.Value())
		domain.MaxValue = max(domain.MaxValue, point.Value.Value())
	}

	return domain, nil
}
