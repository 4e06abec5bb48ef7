// Package dataset loads data points from local json, csv and xlsx files.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gitlab.com/open-soft/go-stats-chart/src/model"
)

var ErrUnsupportedFile = errors.New("dataset: unsupported file type")
var ErrMissingColumn = errors.New("dataset: missing column")

var requiredColumns = []string{"date", "value", "category"}

type Reader struct {
}

// ReadFile picks a decoder by extension and returns points ordered by date.
func (r *Reader) ReadFile(path string) ([]model.DataPoint, error) {
	var points []model.DataPoint
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		points, err = r.readJson(path)
	case ".csv":
		points, err = r.readCsv(path)
	case ".xlsx":
		points, err = r.readXlsx(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	if err != nil {
		return nil, fmt.Errorf("[%s] %w", filepath.Base(path), err)
	}

	SortByDate(points)

	return points, nil
}

// SortByDate orders points ascending by date, keeping the relative order of equal dates.
func SortByDate(points []model.DataPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Lt(points[j].Date)
	})
}

func (r *Reader) readJson(path string) ([]model.DataPoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	points := make([]model.DataPoint, 0)
	if err := json.NewDecoder(file).Decode(&points); err != nil {
		return nil, err
	}

	return points, nil
}

func (r *Reader) readCsv(path string) ([]model.DataPoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return r.ReadCsv(file)
}

// ReadCsv decodes rows with an id,date,value,category header. Column order is free and id is optional.
func (r *Reader) ReadCsv(source io.Reader) ([]model.DataPoint, error) {
	csvReader := csv.NewReader(source)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}

	return r.FromRows(rows)
}

func (r *Reader) readXlsx(path string) ([]model.DataPoint, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return make([]model.DataPoint, 0), nil
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return r.FromRows(rows)
}

// FromRows converts a header row plus data rows into points. Blank rows are skipped.
func (r *Reader) FromRows(rows [][]string) ([]model.DataPoint, error) {
	points := make([]model.DataPoint, 0)
	if len(rows) == 0 {
		return points, nil
	}

	columns := make(map[string]int)
	for index, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = index
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	for rowIndex, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		line := rowIndex + 2
		date, err := model.ParseTimestampMilli(cell(row, columns["date"]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		value, err := strconv.ParseFloat(cell(row, columns["value"]), 64)
		if err != nil || !model.IsFinite(value) {
			return nil, fmt.Errorf("row %d: invalid value %q", line, cell(row, columns["value"]))
		}

		point := model.DataPoint{
			Date:     date,
			Value:    model.Amount(value),
			Category: cell(row, columns["category"]),
		}

		if index, ok := columns["id"]; ok {
			point.Id = cell(row, index)
		}

		points = append(points, point)
	}

	return points, nil
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[index])
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}

	return true
}
