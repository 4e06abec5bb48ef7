package chart

import "errors"

var ErrEmptyInput = errors.New("chart: point set is empty")
var ErrUnorderedInput = errors.New("chart: points are not sorted by date")
var ErrInvalidViewport = errors.New("chart: viewport must have positive size and fractions in (0, 1]")
var ErrInvalidTickCount = errors.New("chart: tick count must not be negative")
var ErrInvalidValue = errors.New("chart: point value must be a finite number")

// IsStructural reports whether err must prevent a render attempt.
func IsStructural(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrUnorderedInput) ||
		errors.Is(err, ErrInvalidViewport) ||
		errors.Is(err, ErrInvalidTickCount) ||
		errors.Is(err, ErrInvalidValue)
}
