package service

import (
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-stats-chart/src/model"
)

type ChartRepositoryMock struct {
	mock.Mock
}

func (m *ChartRepositoryMock) GetChart(key string) (model.ChartDefinition, error) {
	args := m.Called(key)
	return args.Get(0).(model.ChartDefinition), args.Error(1)
}
func (m *ChartRepositoryMock) GetChartCached(key string) (model.ChartDefinition, error) {
	args := m.Called(key)
	return args.Get(0).(model.ChartDefinition), args.Error(1)
}
func (m *ChartRepositoryMock) GetCharts() []model.ChartDefinition {
	args := m.Called()
	return args.Get(0).([]model.ChartDefinition)
}
func (m *ChartRepositoryMock) Create(chart model.ChartDefinition) (*int64, error) {
	args := m.Called(chart)
	id := int64(args.Int(0))
	return &id, args.Error(1)
}
func (m *ChartRepositoryMock) Update(chart model.ChartDefinition) error {
	args := m.Called(chart)
	return args.Error(0)
}

type PointRepositoryMock struct {
	mock.Mock
}

func (m *PointRepositoryMock) GetPoints(chartKey string, size int64) ([]model.DataPoint, error) {
	args := m.Called(chartKey, size)
	return args.Get(0).([]model.DataPoint), args.Error(1)
}
func (m *PointRepositoryMock) AddPoints(chartKey string, points []model.DataPoint) error {
	args := m.Called(chartKey, points)
	return args.Error(0)
}

type GeometryCacheMock struct {
	mock.Mock
}

func (m *GeometryCacheMock) GetGeometry(cacheKey string) (model.Geometry, bool) {
	args := m.Called(cacheKey)
	return args.Get(0).(model.Geometry), args.Bool(1)
}
func (m *GeometryCacheMock) SaveGeometry(cacheKey string, geometry model.Geometry) {
	m.Called(cacheKey, geometry)
}
func (m *GeometryCacheMock) Invalidate(chartKey string) {
	m.Called(chartKey)
}
func (m *GeometryCacheMock) GetCacheKey(chartKey string, viewport model.Viewport) string {
	args := m.Called(chartKey, viewport)
	return args.String(0)
}

type LayoutEngineMock struct {
	mock.Mock
}

func (m *LayoutEngineMock) Layout(points []model.DataPoint, config model.ChartConfig) (model.Geometry, error) {
	args := m.Called(points, config)
	return args.Get(0).(model.Geometry), args.Error(1)
}

type GeometryProviderMock struct {
	mock.Mock
}

func (m *GeometryProviderMock) GetGeometry(chartKey string, viewport *model.Viewport) (model.ChartGeometry, error) {
	args := m.Called(chartKey, viewport)
	return args.Get(0).(model.ChartGeometry), args.Error(1)
}

type PointWriterMock struct {
	mock.Mock
}

func (m *PointWriterMock) AddPoints(chartKey string, points []model.DataPoint) ([]model.DataPoint, error) {
	args := m.Called(chartKey, points)
	return args.Get(0).([]model.DataPoint), args.Error(1)
}

type BroadcasterMock struct {
	mock.Mock
}

func (m *BroadcasterMock) Broadcast(chartKey string) {
	m.Called(chartKey)
}
