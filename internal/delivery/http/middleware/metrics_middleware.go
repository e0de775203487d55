package middleware

import (
	"net/http"
	"strconv"
	"time"

	"doctor-directory/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: m,
	}
}

// Handle records request count and latency labelled by the mux route
// template, so /doctors/7 and /doctors/8 share one series.
func (m *MetricsMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, req)

		route := unmatchedRoute
		if current := mux.CurrentRoute(req); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		m.metrics.HTTPRequests.WithLabelValues(route, req.Method, strconv.Itoa(rec.status)).Inc()
		m.metrics.HTTPRequestDuration.WithLabelValues(route, req.Method).Observe(time.Since(start).Seconds())
	})
}
