package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "doctor_directory"

// Metrics groups the collectors the service exports on /metrics.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DoctorsLoaded       prometheus.Gauge
	SpecialtiesLoaded   prometheus.Gauge
	SourceFetchFailures prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route template, method and status code.",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route template and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		DoctorsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "doctors_loaded",
			Help:      "Records in the in-memory directory snapshot.",
		}),
		SpecialtiesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "specialties_loaded",
			Help:      "Distinct specialties across the loaded records.",
		}),
		SourceFetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetch_failures_total",
			Help:      "Record source fetches that fell back to an empty directory.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.DoctorsLoaded,
		m.SpecialtiesLoaded,
		m.SourceFetchFailures,
	)

	return m
}
