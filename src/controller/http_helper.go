package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"gitlab.com/open-soft/go-stats-chart/src/repository"
	"gitlab.com/open-soft/go-stats-chart/src/service/chart"
	"net/http"
)

type TokenGuard struct {
	ApiToken string
}

// Allow checks the token query parameter. An empty ApiToken leaves the API open.
func (g TokenGuard) Allow(w http.ResponseWriter, req *http.Request) bool {
	if g.ApiToken == "" || req.URL.Query().Get("token") == g.ApiToken {
		return true
	}

	http.Error(w, "Forbidden", http.StatusForbidden)

	return false
}

func setHeaders(w http.ResponseWriter, contentType string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
	w.Header().Set("Content-Type", contentType)
}

func writeJson(w http.ResponseWriter, value interface{}) {
	encoded, err := json.Marshal(value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	_, _ = fmt.Fprint(w, string(encoded))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case chart.IsStructural(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrChartNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
