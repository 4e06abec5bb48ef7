package controller

import (
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"net/http"
)

type HealthCheckerInterface interface {
	HealthCheck() model.ServiceHealth
}

type HealthController struct {
	HealthService HealthCheckerInterface
	Guard         TokenGuard
}

func (h *HealthController) GetHealthCheckAction(w http.ResponseWriter, req *http.Request) {
	setHeaders(w, "application/json")

	if !h.Guard.Allow(w, req) {
		return
	}

	writeJson(w, h.HealthService.HealthCheck())
}
