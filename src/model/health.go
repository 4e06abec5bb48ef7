package model

import (
	"github.com/rafacas/sysstats"
)

const DbStatusOk = "ok"
const DbStatusFail = "fail"
const RedisStatusOk = "ok"
const RedisStatusFail = "fail"
const FeedStatusOk = "ok"
const FeedStatusDisconnected = "disconnected"
const FeedStatusDisabled = "disabled"

type ServiceHealth struct {
	DbStatus       string            `json:"dbStatus"`
	PointsDbStatus string            `json:"pointsDbStatus"`
	RedisStatus    string            `json:"redisStatus"`
	FeedStatus     string            `json:"feedStatus"`
	Subscribers    int               `json:"subscribers"`
	Cores          int               `json:"cores"`
	Memory         sysstats.MemStats `json:"memory"`
	LoadAvg        sysstats.LoadAvg  `json:"loadAvg"`
	CheckedAt      string            `json:"checkedAt"`
}
