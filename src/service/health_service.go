package service

import (
	"context"
	"database/sql"
	"github.com/rafacas/sysstats"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
	"runtime"
)

type FeedStatusInterface interface {
	IsConnected() bool
}

type HealthService struct {
	DB          *sql.DB
	PointsDb    *sql.DB
	RDB         *redis.Client
	Ctx         *context.Context
	Feed        FeedStatusInterface
	StreamHub   *StreamHub
	TimeService utils.TimeServiceInterface
}

func (h *HealthService) HealthCheck() model.ServiceHealth {
	memStats, _ := sysstats.GetMemStats()
	loadAvg, _ := sysstats.GetLoadAvg()

	dbStatus := model.DbStatusOk
	if h.DB.Ping() != nil {
		dbStatus = model.DbStatusFail
	}
	pointsDbStatus := model.DbStatusOk
	if h.PointsDb.Ping() != nil {
		pointsDbStatus = model.DbStatusFail
	}
	redisStatus := model.RedisStatusOk
	if h.RDB.Ping(*h.Ctx).Err() != nil {
		redisStatus = model.RedisStatusFail
	}

	feedStatus := model.FeedStatusDisabled
	if h.Feed != nil {
		feedStatus = model.FeedStatusOk
		if !h.Feed.IsConnected() {
			feedStatus = model.FeedStatusDisconnected
		}
	}

	subscribers := 0
	if h.StreamHub != nil {
		subscribers = h.StreamHub.Count()
	}

	return model.ServiceHealth{
		DbStatus:       dbStatus,
		PointsDbStatus: pointsDbStatus,
		RedisStatus:    redisStatus,
		FeedStatus:     feedStatus,
		Subscribers:    subscribers,
		Cores:          runtime.NumCPU(),
		Memory:         memStats,
		LoadAvg:        loadAvg,
		CheckedAt:      h.TimeService.GetNowDateTimeString(),
	}
}
