package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geoalert"

// Metrics holds the Prometheus collectors of one engine instance. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ReportsCreated   *prometheus.CounterVec
	ResponsesCreated prometheus.Counter
	RepliesCreated   prometheus.Counter
	ThreadsDeleted   prometheus.Counter
	Notifications    *prometheus.CounterVec
	DispatchDegraded *prometheus.CounterVec
	DispatchDuration prometheus.Histogram
	Acknowledgements *prometheus.CounterVec
	IndexedOrigins   prometheus.Gauge
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
}

// New creates a metrics instance on its own registry so tests and multiple
// engines in one process never collide on registration.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ReportsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "reports_created_total",
				Help:      "Reports appended to the alert store",
			},
			[]string{"category"},
		),
		ResponsesCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "responses_created_total",
			Help:      "Government responses appended",
		}),
		RepliesCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "replies_created_total",
			Help:      "Citizen replies appended",
		}),
		ThreadsDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "threads_deleted_total",
			Help:      "Threads removed with cascade",
		}),
		Notifications: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "notifications_total",
				Help:      "Notifications created by fan-out",
			},
			[]string{"kind"},
		),
		DispatchDegraded: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "degraded_total",
				Help:      "Broadcasts skipped or failed",
			},
			[]string{"reason"},
		),
		DispatchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "fanout_duration_seconds",
			Help:      "Time spent handling one event in the dispatcher",
			Buckets:   prometheus.DefBuckets,
		}),
		Acknowledgements: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "readstate",
				Name:      "acknowledgements_total",
				Help:      "Read-state changes by action",
			},
			[]string{"action"}, // read, read_all, dismiss, clear
		),
		IndexedOrigins: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "indexed_origins",
			Help:      "Attack origins held by the geo index",
		}),
		RequestCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of requests",
			},
			[]string{"route", "method", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		RequestsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of requests currently being processed",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records per-route request metrics. The route pattern is read
// after the handler ran, when chi has resolved it.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		m.RequestCounter.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}

func (m *Metrics) ReportCreated(category string) {
	if m != nil {
		m.ReportsCreated.WithLabelValues(category).Inc()
	}
}

func (m *Metrics) ResponseCreated() {
	if m != nil {
		m.ResponsesCreated.Inc()
	}
}

func (m *Metrics) ReplyCreated() {
	if m != nil {
		m.RepliesCreated.Inc()
	}
}

func (m *Metrics) ThreadDeleted() {
	if m != nil {
		m.ThreadsDeleted.Inc()
	}
}

func (m *Metrics) NotificationCreated(kind string) {
	if m != nil {
		m.Notifications.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) Degraded(reason string) {
	if m != nil {
		m.DispatchDegraded.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) ObserveDispatch(d time.Duration) {
	if m != nil {
		m.DispatchDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) Acknowledged(action string) {
	if m != nil {
		m.Acknowledgements.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) SetIndexed(n int) {
	if m != nil {
		m.IndexedOrigins.Set(float64(n))
	}
}
