package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/gorilla/websocket"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/service/render"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
)

type ChartServiceInterface interface {
	GetGeometry(chartKey string, viewport *model.Viewport) (model.ChartGeometry, error)
	GetCharts(chartKeys []string) []model.ChartGeometry
	AddPoints(chartKey string, points []model.DataPoint) ([]model.DataPoint, error)
	SaveDefinition(chartKey string, update model.ChartDefinitionUpdate) (model.ChartDefinition, error)
}

type RendererInterface interface {
	Render(geometry model.Geometry, format render.Format, w io.Writer) error
}

type StreamServerInterface interface {
	Serve(conn *websocket.Conn)
}

type ChartController struct {
	ChartService ChartServiceInterface
	Renderer     RendererInterface
	StreamHub    StreamServerInterface
	Formatter    *utils.Formatter
	Guard        TokenGuard
	Upgrader     websocket.Upgrader
}

func (c *ChartController) GetGeometryAction(w http.ResponseWriter, req *http.Request) {
	setHeaders(w, "application/json")

	if !c.Guard.Allow(w, req) {
		return
	}

	viewport, err := c.getViewport(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	chartKey := strings.TrimPrefix(req.URL.Path, "/chart/geometry/")
	geometry, err := c.ChartService.GetGeometry(chartKey, viewport)
	if err != nil {
		writeError(w, err)

		return
	}

	writeJson(w, geometry)
}

func (c *ChartController) GetChartListAction(w http.ResponseWriter, req *http.Request) {
	setHeaders(w, "application/json")

	if !c.Guard.Allow(w, req) {
		return
	}

	chartFilter := c.Formatter.SplitList(req.URL.Query().Get("chart"))

	writeJson(w, c.ChartService.GetCharts(chartFilter))
}

func (c *ChartController) GetRenderAction(w http.ResponseWriter, req *http.Request) {
	setHeaders(w, "application/json")

	if !c.Guard.Allow(w, req) {
		return
	}

	format, err := render.ParseFormat(req.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	viewport, err := c.getViewport(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	chartKey := strings.TrimPrefix(req.URL.Path, "/chart/render/")
	geometry, err := c.ChartService.GetGeometry(chartKey, viewport)
	if err != nil {
		writeError(w, err)

		return
	}

	buffer := bytes.Buffer{}
	err = c.Renderer.Render(geometry.Geometry, format, &buffer)
	if err != nil {
		log.Printf("[%s] render failed: %s", chartKey, err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	_, _ = w.Write(buffer.Bytes())
}

func (c *ChartController) PostPointsAction(w http.ResponseWriter, req *http.Request) {
	setHeaders(w, "application/json")

	if req.Method == "OPTIONS" {
		fmt.Fprintf(w, "OK")
		return
	}

	if !c.Guard.Allow(w, req) {
		return
	}

	if req.Method != "POST" {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)

		return
	}

	var points []model.DataPoint
	err := json.NewDecoder(req.Body).Decode(&points)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	chartKey := strings.TrimPrefix(req.URL.Path, "/chart/points/")
	stored, err := c.ChartService.AddPoints(chartKey, points)
	if err != nil {
		writeError(w, err)

		return
	}

	encoded, err := json.Marshal(stored)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(encoded)
}

func (c *ChartController) PutDefinitionAction(w http.ResponseWriter, req *http.Request) {
	setHeaders(w, "application/json")

	if req.Method == "OPTIONS" {
		fmt.Fprintf(w, "OK")
		return
	}

	if !c.Guard.Allow(w, req) {
		return
	}

	if req.Method != "PUT" {
		http.Error(w, "Only PUT method is allowed", http.StatusMethodNotAllowed)

		return
	}

	var update model.ChartDefinitionUpdate
	err := json.NewDecoder(req.Body).Decode(&update)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	chartKey := strings.TrimPrefix(req.URL.Path, "/chart/definition/")
	if chartKey == "" {
		http.Error(w, "Chart key is required", http.StatusBadRequest)

		return
	}

	definition, err := c.ChartService.SaveDefinition(chartKey, update)
	if err != nil {
		writeError(w, err)

		return
	}

	writeJson(w, definition)
}

func (c *ChartController) StreamAction(w http.ResponseWriter, req *http.Request) {
	if !c.Guard.Allow(w, req) {
		return
	}

	conn, err := c.Upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("Stream [err_0] upgrade: %s", err.Error())
		return
	}

	c.StreamHub.Serve(conn)
}

// getViewport reads an optional width/height override from the query.
func (c *ChartController) getViewport(req *http.Request) (*model.Viewport, error) {
	width := req.URL.Query().Get("width")
	height := req.URL.Query().Get("height")

	if width == "" && height == "" {
		return nil, nil
	}

	viewport := model.Viewport{}
	for name, raw := range map[string]string{"width": width, "height": height} {
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("invalid %s %q", name, raw)
		}
		if name == "width" {
			viewport.Width = value
		} else {
			viewport.Height = value
		}
	}

	return &viewport, nil
}
