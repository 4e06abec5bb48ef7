package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/service/chart"
	"gitlab.com/open-soft/go-stats-chart/src/service/dataset"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
)

type layoutOptions struct {
	width       float64
	height      float64
	ticks       int
	granularity string
	timezone    string
	grid        int
	categories  string
	captionX    string
	captionY    string
}

func (o *layoutOptions) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.width, "width", 1000, "Viewport width in pixels")
	cmd.Flags().Float64Var(&o.height, "height", 500, "Viewport height in pixels")
	cmd.Flags().IntVar(&o.ticks, "ticks", 4, "Number of time-axis intervals")
	cmd.Flags().StringVar(&o.granularity, "granularity", string(model.GranularityMonthYear), "Tick labels: hour, month, monthYear, year; anything else shows axis captions")
	cmd.Flags().StringVar(&o.timezone, "timezone", "", "IANA zone for tick labels (default: local)")
	cmd.Flags().IntVar(&o.grid, "grid", 10, "Grid line count per axis")
	cmd.Flags().StringVar(&o.categories, "categories", "", "Comma separated category alphabet (default: every category in the file)")
	cmd.Flags().StringVar(&o.captionX, "caption-x", model.DefaultXAxisCaption, "X axis caption")
	cmd.Flags().StringVar(&o.captionY, "caption-y", model.DefaultYAxisCaption, "Y axis caption")
}

func (o *layoutOptions) config(points []model.DataPoint, formatter *utils.Formatter) (model.ChartConfig, error) {
	tickConfig := model.TickConfig{
		Count:       o.ticks,
		Granularity: model.Granularity(o.granularity),
	}

	if o.timezone != "" {
		location, err := time.LoadLocation(o.timezone)
		if err != nil {
			return model.ChartConfig{}, fmt.Errorf("invalid timezone: %w", err)
		}
		tickConfig.Location = location
	}

	categories := formatter.SplitList(o.categories)
	if len(categories) == 0 {
		categories = categoriesOf(points)
	}

	return model.ChartConfig{
		Categories: categories,
		Viewport:   model.Viewport{Width: o.width, Height: o.height},
		Ticks:      tickConfig,
		Grid:       model.GridConfig{LineCount: o.grid},
		Captions:   model.AxisCaptions{X: o.captionX, Y: o.captionY},
	}, nil
}

// layoutFile reads the dataset at path and lays it out with the flag values.
func (o *layoutOptions) layoutFile(path string) (model.ChartGeometry, error) {
	formatter := utils.Formatter{}
	reader := dataset.Reader{}

	points, err := reader.ReadFile(path)
	if err != nil {
		return model.ChartGeometry{}, err
	}

	config, err := o.config(points, &formatter)
	if err != nil {
		return model.ChartGeometry{}, err
	}

	engine := chart.LayoutEngine{Formatter: &formatter}
	geometry, err := engine.Layout(points, config)
	if err != nil {
		return model.ChartGeometry{}, fmt.Errorf("[%s] layout failed: %w", filepath.Base(path), err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return model.ChartGeometry{Chart: name, Title: name, Geometry: geometry}, nil
}

// categoriesOf lists categories in order of first appearance.
func categoriesOf(points []model.DataPoint) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, point := range points {
		if seen[point.Category] {
			continue
		}
		seen[point.Category] = true
		categories = append(categories, point.Category)
	}

	return categories
}
