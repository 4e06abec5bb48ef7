package service

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gitlab.com/open-soft/go-stats-chart/src/event"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/repository"
	"gitlab.com/open-soft/go-stats-chart/src/service/chart"
	"log"
)

const DefaultPointLimit = 5000

type GeometryProviderInterface interface {
	GetGeometry(chartKey string, viewport *model.Viewport) (model.ChartGeometry, error)
}

type ChartService struct {
	ChartRepository repository.ChartStorageInterface
	PointRepository repository.PointStorageInterface
	GeometryCache   repository.GeometryCacheInterface
	LayoutEngine    chart.LayoutEngineInterface
	EventDispatcher *EventDispatcher
	PointLimit      int64
}

type ChartResult struct {
	Index    int
	Geometry *model.ChartGeometry
}

// GetGeometry lays out the chart for its stored viewport, or for viewport
// when one is given. Results are cached for a few seconds.
func (c *ChartService) GetGeometry(chartKey string, viewport *model.Viewport) (model.ChartGeometry, error) {
	definition, err := c.ChartRepository.GetChartCached(chartKey)
	if err != nil {
		return model.ChartGeometry{}, err
	}

	config := definition.Config
	if viewport != nil {
		config.Viewport = mergeViewport(config.Viewport, *viewport)
	}
	config.Viewport = config.Viewport.WithDefaults()

	result := model.ChartGeometry{
		Chart: definition.Key,
		Title: definition.Title,
	}

	cacheKey := c.GeometryCache.GetCacheKey(definition.Key, config.Viewport)
	if cached, ok := c.GeometryCache.GetGeometry(cacheKey); ok {
		result.Geometry = cached
		return result, nil
	}

	points, err := c.PointRepository.GetPoints(definition.Key, c.getPointLimit())
	if err != nil {
		return model.ChartGeometry{}, fmt.Errorf("[%s] can't load points: %w", definition.Key, err)
	}

	geometry, err := c.LayoutEngine.Layout(points, config)
	if err != nil {
		return model.ChartGeometry{}, fmt.Errorf("[%s] layout failed: %w", definition.Key, err)
	}

	c.GeometryCache.SaveGeometry(cacheKey, geometry)
	result.Geometry = geometry

	return result, nil
}

// GetCharts lays out several charts concurrently and keeps the requested
// order. Charts that fail are logged and left out.
func (c *ChartService) GetCharts(chartKeys []string) []model.ChartGeometry {
	if len(chartKeys) == 0 {
		for _, definition := range c.ChartRepository.GetCharts() {
			chartKeys = append(chartKeys, definition.Key)
		}
	}

	charts := make([]model.ChartGeometry, 0)
	if len(chartKeys) == 0 {
		return charts
	}

	resultChannel := make(chan ChartResult)

	for index, chartKey := range chartKeys {
		go func(index int, chartKey string) {
			geometry, err := c.GetGeometry(chartKey, nil)
			if err != nil {
				log.Printf("[%s] chart is skipped: %s", chartKey, err.Error())
				resultChannel <- ChartResult{Index: index}
				return
			}

			resultChannel <- ChartResult{Index: index, Geometry: &geometry}
		}(index, chartKey)
	}

	mapped := make(map[int]*model.ChartGeometry)
	for processed := 0; processed < len(chartKeys); processed++ {
		result := <-resultChannel
		mapped[result.Index] = result.Geometry
	}

	for index := range chartKeys {
		if mapped[index] != nil {
			charts = append(charts, *mapped[index])
		}
	}

	return charts
}

// AddPoints stores points for an existing chart. Points without an id get one.
func (c *ChartService) AddPoints(chartKey string, points []model.DataPoint) ([]model.DataPoint, error) {
	if len(points) == 0 {
		return points, chart.ErrEmptyInput
	}

	for index, point := range points {
		if !point.Value.IsFinite() {
			return nil, fmt.Errorf("[%s] %w: point %d", chartKey, chart.ErrInvalidValue, index)
		}
	}

	definition, err := c.ChartRepository.GetChartCached(chartKey)
	if err != nil {
		return nil, err
	}

	stored := make([]model.DataPoint, 0, len(points))
	for _, point := range points {
		if point.Id == "" {
			point.Id = uuid.New().String()
		}
		stored = append(stored, point)
	}

	err = c.PointRepository.AddPoints(definition.Key, stored)
	if err != nil {
		return nil, fmt.Errorf("[%s] can't store points: %w", definition.Key, err)
	}

	c.GeometryCache.Invalidate(definition.Key)
	c.dispatch(event.PointsAdded{Chart: definition.Key, Points: stored}, event.EventPointsAdded)

	return stored, nil
}

// SaveDefinition creates the chart or replaces its title and configuration.
func (c *ChartService) SaveDefinition(chartKey string, update model.ChartDefinitionUpdate) (model.ChartDefinition, error) {
	definition, err := c.ChartRepository.GetChart(chartKey)

	if errors.Is(err, repository.ErrChartNotFound) {
		definition = model.ChartDefinition{
			Uuid:   uuid.New().String(),
			Key:    chartKey,
			Title:  update.Title,
			Config: update.Config,
		}
		id, err := c.ChartRepository.Create(definition)
		if err != nil {
			return definition, err
		}
		definition.Id = *id
	} else if err != nil {
		return definition, err
	} else {
		definition.Title = update.Title
		definition.Config = update.Config
		err = c.ChartRepository.Update(definition)
		if err != nil {
			return definition, err
		}
	}

	c.GeometryCache.Invalidate(definition.Key)
	c.dispatch(event.ChartUpdated{Chart: definition}, event.EventChartUpdated)

	return definition, nil
}

func (c *ChartService) dispatch(eventModel interface{}, eventName string) {
	if c.EventDispatcher == nil {
		return
	}

	c.EventDispatcher.Dispatch(eventModel, eventName)
}

func (c *ChartService) getPointLimit() int64 {
	if c.PointLimit <= 0 {
		return DefaultPointLimit
	}

	return c.PointLimit
}

func mergeViewport(base model.Viewport, override model.Viewport) model.Viewport {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	if override.WidthFraction > 0 {
		base.WidthFraction = override.WidthFraction
	}
	if override.HeightFraction > 0 {
		base.HeightFraction = override.HeightFraction
	}

	return base
}
