package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsHandler struct {
	handler http.Handler
}

func NewMetricsHandler() MetricsHandler {
	return MetricsHandler{handler: promhttp.Handler()}
}

// ServeHTTP bypasses the api error handling since Prometheus writes its own
// exposition format.
func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}
