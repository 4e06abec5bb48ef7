package config

import (
	"context"
	"database/sql"
	"fmt"
	_ "github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-stats-chart/src/client"
	"gitlab.com/open-soft/go-stats-chart/src/controller"
	"gitlab.com/open-soft/go-stats-chart/src/repository"
	"gitlab.com/open-soft/go-stats-chart/src/service"
	"gitlab.com/open-soft/go-stats-chart/src/service/chart"
	"gitlab.com/open-soft/go-stats-chart/src/service/render"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

func InitServiceContainer() Container {
	db, err := sql.Open("mysql", os.Getenv("DATABASE_DSN"))
	if err != nil {
		log.Fatal(fmt.Sprintf("MySQL can't connect: %s", err.Error()))
	}

	db.SetMaxIdleConns(64)
	db.SetMaxOpenConns(64)
	db.SetConnMaxLifetime(time.Minute)

	pointsDb, err := sql.Open("clickhouse", os.Getenv("CLICKHOUSE_DSN"))
	if err != nil {
		log.Fatal(fmt.Sprintf("ClickHouse can't connect: %s", err.Error()))
	}

	pointsDb.SetMaxIdleConns(16)
	pointsDb.SetMaxOpenConns(16)
	pointsDb.SetConnMaxLifetime(time.Minute)

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_DSN"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	formatter := utils.Formatter{}
	timeService := utils.TimeHelper{}

	chartRepository := repository.ChartRepository{
		DB:  db,
		RDB: rdb,
		Ctx: &ctx,
	}
	pointRepository := repository.PointRepository{
		DB: pointsDb,
	}
	geometryCache := repository.GeometryCache{
		RDB: rdb,
		Ctx: &ctx,
		TTL: time.Second * 5,
	}

	eventDispatcher := service.EventDispatcher{
		Subscribers: make([]service.SubscriberInterface, 0),
		Enabled:     true,
	}

	chartService := service.ChartService{
		ChartRepository: &chartRepository,
		PointRepository: &pointRepository,
		GeometryCache:   &geometryCache,
		LayoutEngine:    &chart.LayoutEngine{Formatter: &formatter},
		EventDispatcher: &eventDispatcher,
		PointLimit:      service.DefaultPointLimit,
	}

	streamHub := service.StreamHub{
		ChartService: &chartService,
	}
	eventDispatcher.Subscribers = append(eventDispatcher.Subscribers, service.ChartEventSubscriber{
		StreamHub: &streamHub,
	})

	var feedClient *client.FeedClient
	healthService := service.HealthService{
		DB:          db,
		PointsDb:    pointsDb,
		RDB:         rdb,
		Ctx:         &ctx,
		StreamHub:   &streamHub,
		TimeService: &timeService,
	}

	if feedAddress := os.Getenv("FEED_WS_DSN"); feedAddress != "" {
		feedClient = &client.FeedClient{
			Address:     feedAddress,
			TimeService: &timeService,
		}
		healthService.Feed = feedClient
	}

	guard := controller.TokenGuard{ApiToken: os.Getenv("API_TOKEN")}

	return Container{
		Db:              db,
		PointsDb:        pointsDb,
		RDB:             rdb,
		Formatter:       &formatter,
		TimeService:     &timeService,
		ChartRepository: &chartRepository,
		PointRepository: &pointRepository,
		ChartService:    &chartService,
		StreamHub:       &streamHub,
		HealthService:   &healthService,
		FeedClient:      feedClient,
		PointFeedListener: &service.PointFeedListener{
			ChartService: &chartService,
			Channel:      make(chan []byte),
		},
		ChartController: &controller.ChartController{
			ChartService: &chartService,
			Renderer: &render.Renderer{
				Formatter: &formatter,
				Theme:     render.DefaultTheme(),
			},
			StreamHub: &streamHub,
			Formatter: &formatter,
			Guard:     guard,
			Upgrader: websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			},
		},
		HealthController: &controller.HealthController{
			HealthService: &healthService,
			Guard:         guard,
		},
	}
}

type Container struct {
	Db                *sql.DB
	PointsDb          *sql.DB
	RDB               *redis.Client
	Formatter         *utils.Formatter
	TimeService       *utils.TimeHelper
	ChartRepository   *repository.ChartRepository
	PointRepository   *repository.PointRepository
	ChartService      *service.ChartService
	StreamHub         *service.StreamHub
	HealthService     *service.HealthService
	FeedClient        *client.FeedClient
	PointFeedListener *service.PointFeedListener
	ChartController   *controller.ChartController
	HealthController  *controller.HealthController
}

// StartFeed subscribes to the upstream point feed, if one is configured, and
// stores every event it delivers. It returns the open feed connections.
func (c *Container) StartFeed() []*websocket.Conn {
	connections := make([]*websocket.Conn, 0)
	if c.FeedClient == nil {
		log.Println("Feed is disabled, FEED_WS_DSN is empty")
		return connections
	}

	go c.PointFeedListener.ListenAll()

	chartKeys := c.Formatter.SplitList(os.Getenv("FEED_CHARTS"))
	if len(chartKeys) == 0 {
		for _, definition := range c.ChartRepository.GetCharts() {
			chartKeys = append(chartKeys, definition.Key)
		}
	}

	for index, streamBatchItem := range client.GetStreamBatch(chartKeys, 0) {
		connections = append(connections, c.FeedClient.Listen(c.PointFeedListener.Channel, streamBatchItem, int64(index)))
		log.Printf("Feed batch %d websocket: %s", index, strings.Join(streamBatchItem, ", "))
	}

	return connections
}

func (c *Container) StartHttpServer() {
	http.HandleFunc("/chart/geometry/", c.ChartController.GetGeometryAction)
	http.HandleFunc("/chart/list", c.ChartController.GetChartListAction)
	http.HandleFunc("/chart/render/", c.ChartController.GetRenderAction)
	http.HandleFunc("/chart/points/", c.ChartController.PostPointsAction)
	http.HandleFunc("/chart/definition/", c.ChartController.PutDefinitionAction)
	http.HandleFunc("/chart/stream", c.ChartController.StreamAction)
	http.HandleFunc("/health/check", c.HealthController.GetHealthCheckAction)

	address := os.Getenv("HTTP_ADDR")
	if address == "" {
		address = ":8080"
	}

	log.Printf("HTTP server is listening on %s", address)
	err := http.ListenAndServe(address, nil)
	if err != nil {
		log.Fatal(err)
	}
}
