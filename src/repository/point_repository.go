package repository

import (
	"database/sql"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"log"
	"slices"
	"time"
)

type PointStorageInterface interface {
	GetPoints(chartKey string, size int64) ([]model.DataPoint, error)
	AddPoints(chartKey string, points []model.DataPoint) error
}

// PointRepository keeps chart points in ClickHouse.
type PointRepository struct {
	DB *sql.DB
}

// GetPoints returns the latest size points of a chart, oldest first.
func (p *PointRepository) GetPoints(chartKey string, size int64) ([]model.DataPoint, error) {
	res, err := p.DB.Query(`
		SELECT
			cp.id as Id,
			cp.date as Date,
			cp.value as Value,
			cp.category as Category
		FROM chart_points cp
		WHERE cp.chart = ?
		ORDER BY cp.date DESC, cp.created_at DESC
		LIMIT ?
	`, chartKey, size)
	if err != nil {
		log.Println(err)
		return nil, err
	}
	defer res.Close()

	list := make([]model.DataPoint, 0)

	for res.Next() {
		var point model.DataPoint
		var date time.Time
		var value float64
		err := res.Scan(
			&point.Id,
			&date,
			&value,
			&point.Category,
		)

		if err != nil {
			log.Println(err)
			return nil, err
		}

		point.Date = model.NewTimestampMilli(date)
		point.Value = model.Amount(value)
		list = append(list, point)
	}

	if err := res.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(list)

	return list, nil
}

func (p *PointRepository) AddPoints(chartKey string, points []model.DataPoint) error {
	scope, err := p.DB.Begin()
	if err != nil {
		log.Println(err)
		return err
	}

	batch, err := scope.Prepare(`INSERT INTO chart_points (chart, id, date, value, category, created_at)`)
	if err != nil {
		log.Println(err)
		_ = scope.Rollback()
		return err
	}

	now := time.Now()
	for _, point := range points {
		_, err = batch.Exec(
			chartKey,
			point.Id,
			point.Date.Time(),
			point.Value.Value(),
			point.Category,
			now,
		)

		if err != nil {
			log.Println(err)
			_ = scope.Rollback()
			return err
		}
	}

	return scope.Commit()
}
