package utils

import (
	"math"
	"strconv"
	"strings"
)

type Formatter struct {
}

func (m *Formatter) Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(m.Round(num*output)) / output
}

// FormatCoordinate prints a pixel value with at most two decimals.
func (m *Formatter) FormatCoordinate(num float64) string {
	return strconv.FormatFloat(m.ToFixed(num, 2), 'f', -1, 64)
}

// FormatPolyline joins flat x,y pairs into the "x1,y1 x2,y2" drawing form.
// A trailing unpaired value is ignored.
func (m *Formatter) FormatPolyline(coordinates []float64) string {
	pairs := make([]string, 0, len(coordinates)/2)
	for i := 0; i+1 < len(coordinates); i += 2 {
		pairs = append(pairs, m.FormatCoordinate(coordinates[i])+","+m.FormatCoordinate(coordinates[i+1]))
	}

	return strings.Join(pairs, " ")
}

// SplitList reads a comma separated list, dropping blanks.
func (m *Formatter) SplitList(value string) []string {
	list := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		list = append(list, item)
	}

	return list
}
