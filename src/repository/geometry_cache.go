package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"log"
	"time"
)

type GeometryCacheInterface interface {
	GetGeometry(cacheKey string) (model.Geometry, bool)
	SaveGeometry(cacheKey string, geometry model.Geometry)
	Invalidate(chartKey string)
	GetCacheKey(chartKey string, viewport model.Viewport) string
}

type GeometryCache struct {
	RDB *redis.Client
	Ctx *context.Context
	TTL time.Duration
}

func (g *GeometryCache) GetGeometry(cacheKey string) (model.Geometry, bool) {
	var geometry model.Geometry

	encoded := g.RDB.Get(*g.Ctx, cacheKey).Val()
	if len(encoded) == 0 {
		return geometry, false
	}

	err := json.Unmarshal([]byte(encoded), &geometry)
	if err != nil {
		log.Printf("[%s] broken geometry cache: %s", cacheKey, err.Error())
		return geometry, false
	}

	return geometry, true
}

func (g *GeometryCache) SaveGeometry(cacheKey string, geometry model.Geometry) {
	encoded, err := json.Marshal(geometry)
	if err != nil {
		return
	}

	g.RDB.Set(*g.Ctx, cacheKey, string(encoded), g.getTTL())
}

// Invalidate drops every cached viewport of the chart.
func (g *GeometryCache) Invalidate(chartKey string) {
	iter := g.RDB.Scan(*g.Ctx, 0, fmt.Sprintf("chart-geometry-%s-*", chartKey), 100).Iterator()
	for iter.Next(*g.Ctx) {
		g.RDB.Del(*g.Ctx, iter.Val())
	}

	if err := iter.Err(); err != nil {
		log.Printf("[%s] geometry cache invalidation failed: %s", chartKey, err.Error())
	}
}

func (g *GeometryCache) GetCacheKey(chartKey string, viewport model.Viewport) string {
	return fmt.Sprintf(
		"chart-geometry-%s-%gx%g-%gx%g",
		chartKey,
		viewport.Width,
		viewport.Height,
		viewport.WidthFraction,
		viewport.HeightFraction,
	)
}

func (g *GeometryCache) getTTL() time.Duration {
	if g.TTL == 0 {
		return time.Second * 5
	}

	return g.TTL
}
