package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"log"
	"time"
)

var ErrChartNotFound = errors.New("chart is not found")

type ChartStorageInterface interface {
	GetChart(key string) (model.ChartDefinition, error)
	GetChartCached(key string) (model.ChartDefinition, error)
	GetCharts() []model.ChartDefinition
	Create(chart model.ChartDefinition) (*int64, error)
	Update(chart model.ChartDefinition) error
}

type ChartRepository struct {
	DB  *sql.DB
	RDB *redis.Client
	Ctx *context.Context
}

func (c *ChartRepository) GetChartCached(key string) (model.ChartDefinition, error) {
	cacheKey := c.GetCacheKey(key)
	cachedChart := c.RDB.Get(*c.Ctx, cacheKey).Val()

	if len(cachedChart) > 0 {
		var chart model.ChartDefinition
		err := json.Unmarshal([]byte(cachedChart), &chart)
		if err == nil {
			return chart, nil
		}
	}

	chart, err := c.GetChart(key)
	if err != nil {
		return chart, err
	}

	chartEncoded, err := json.Marshal(chart)
	if err == nil {
		c.RDB.Set(*c.Ctx, cacheKey, string(chartEncoded), time.Minute)
	}

	return chart, nil
}

func (c *ChartRepository) GetChart(key string) (model.ChartDefinition, error) {
	var chart model.ChartDefinition

	err := c.DB.QueryRow(`
		SELECT
			c.id as Id,
			c.uuid as Uuid,
			c.chart_key as ChartKey,
			c.title as Title,
			c.config as Config
		FROM charts c
		WHERE c.chart_key = ?`, key,
	).Scan(
		&chart.Id,
		&chart.Uuid,
		&chart.Key,
		&chart.Title,
		&chart.Config,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return chart, fmt.Errorf("%w: %s", ErrChartNotFound, key)
	}

	if err != nil {
		log.Println(err)
		return chart, err
	}

	return chart, nil
}

func (c *ChartRepository) GetCharts() []model.ChartDefinition {
	list := make([]model.ChartDefinition, 0)

	res, err := c.DB.Query(`
		SELECT
			c.id as Id,
			c.uuid as Uuid,
			c.chart_key as ChartKey,
			c.title as Title,
			c.config as Config
		FROM charts c
		ORDER BY c.id ASC
	`)
	if err != nil {
		log.Println(err)
		return list
	}
	defer res.Close()

	for res.Next() {
		var chart model.ChartDefinition
		err := res.Scan(
			&chart.Id,
			&chart.Uuid,
			&chart.Key,
			&chart.Title,
			&chart.Config,
		)

		if err != nil {
			log.Println(err)
			continue
		}

		list = append(list, chart)
	}

	return list
}

func (c *ChartRepository) Create(chart model.ChartDefinition) (*int64, error) {
	res, err := c.DB.Exec(`
		INSERT INTO charts SET
			uuid = ?,
			chart_key = ?,
			title = ?,
			config = ?
	`,
		chart.Uuid,
		chart.Key,
		chart.Title,
		chart.Config,
	)

	if err != nil {
		log.Println(err)
		return nil, err
	}

	lastId, err := res.LastInsertId()

	return &lastId, err
}

func (c *ChartRepository) Update(chart model.ChartDefinition) error {
	_, err := c.DB.Exec(`
		UPDATE charts c SET
			c.title = ?,
			c.config = ?
		WHERE c.chart_key = ? AND c.id = ?
	`,
		chart.Title,
		chart.Config,
		chart.Key,
		chart.Id,
	)

	if err != nil {
		log.Println(err)
		return err
	}

	// Invalidate cache
	c.RDB.Del(*c.Ctx, c.GetCacheKey(chart.Key))

	return nil
}

func (c *ChartRepository) GetCacheKey(key string) string {
	return fmt.Sprintf("chart-definition-%s", key)
}
