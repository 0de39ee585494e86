// Package telemetry exposes Prometheus collectors for the HTTP server and
// the database pool.
package telemetry

import (
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankpanel_http_requests_total",
				Help: "Total HTTP requests by method, route and status code.",
			},
			[]string{"method", "route", "code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankpanel_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds by method and route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankpanel_http_requests_in_flight",
				Help: "Current number of in-flight HTTP requests.",
			},
		),
	}

	registerer.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestsInFlight,
	)

	return m
}

func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncInFlight() {
	if m == nil {
		return
	}

	m.httpRequestsInFlight.Inc()
}

func (m *Metrics) DecInFlight() {
	if m == nil {
		return
	}

	m.httpRequestsInFlight.Dec()
}

// RegisterPoolMetrics exports pgxpool statistics as gauges and counters.
func RegisterPoolMetrics(pool *pgxpool.Pool, registerer prometheus.Registerer) error {
	if pool == nil {
		return errors.New("pool is nil")
	}
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "bankpanel_db_pool_total_connections",
				Help: "Open database connections.",
			},
			func() float64 { return float64(pool.Stat().TotalConns()) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "bankpanel_db_pool_acquired_connections",
				Help: "Connections currently acquired by the application.",
			},
			func() float64 { return float64(pool.Stat().AcquiredConns()) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "bankpanel_db_pool_idle_connections",
				Help: "Idle database connections.",
			},
			func() float64 { return float64(pool.Stat().IdleConns()) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "bankpanel_db_pool_empty_acquire_total",
				Help: "Acquires that had to wait for a connection.",
			},
			func() float64 { return float64(pool.Stat().EmptyAcquireCount()) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "bankpanel_db_pool_acquire_duration_seconds_total",
				Help: "Total time spent acquiring connections in seconds.",
			},
			func() float64 { return pool.Stat().AcquireDuration().Seconds() },
		),
	}

	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}

	return nil
}
