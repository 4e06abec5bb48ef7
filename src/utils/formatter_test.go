package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPolyline(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal("100,437.5 900,62.5", formatter.FormatPolyline([]float64{100, 437.5, 900, 62.5}))
	assertion.Equal("1.23,4", formatter.FormatPolyline([]float64{1.2345, 4.0001, 7}))
	assertion.Equal("", formatter.FormatPolyline(nil))
}

func TestFormatCoordinate(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal("0", formatter.FormatCoordinate(0))
	assertion.Equal("-3.5", formatter.FormatCoordinate(-3.5))
	assertion.Equal("133.33", formatter.FormatCoordinate(400.0/3.0))
}

func TestSplitList(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal([]string{"1", "2", "3"}, formatter.SplitList(" 1, 2 ,,3 "))
	assertion.Empty(formatter.SplitList(""))
}
