package observability

import (
	"chat-circle/contract"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chat_circle"

// Metrics owns a dedicated Prometheus registry so tests can build several instances.
type Metrics struct {
	registry *prometheus.Registry

	commits       prometheus.Counter
	changes       prometheus.Counter
	subscriptions prometheus.Gauge
	messages      *prometheus.CounterVec
	censored      prometheus.Counter
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	rss           prometheus.Gauge
	cpu           prometheus.Gauge
	goroutines    prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "store_commits_total",
			Help: "Committed store transactions.",
		}),
		changes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "store_document_writes_total",
			Help: "Documents written by committed transactions.",
		}),
		subscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "store_active_subscriptions",
			Help: "Live queries currently open.",
		}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "messages_posted_total",
			Help: "Messages posted, by conversation kind.",
		}, []string{"kind"}),
		censored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "messages_censored_total",
			Help: "Messages in which at least one word was masked.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests, by route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "process_rss_bytes",
			Help: "Resident memory sampled by the heartbeat.",
		}),
		cpu: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "process_cpu_percent",
			Help: "CPU usage sampled by the heartbeat.",
		}),
		goroutines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "goroutines",
			Help: "Goroutines sampled by the heartbeat.",
		}),
	}
	m.registry.MustRegister(
		m.commits, m.changes, m.subscriptions, m.messages, m.censored,
		m.requests, m.latency, m.rss, m.cpu, m.goroutines,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Committed(changes int) {
	m.commits.Inc()
	m.changes.Add(float64(changes))
}

func (m *Metrics) SubscriptionOpened() { m.subscriptions.Inc() }

func (m *Metrics) SubscriptionClosed() { m.subscriptions.Dec() }

func (m *Metrics) MessagePosted(kind string, censored bool) {
	m.messages.WithLabelValues(kind).Inc()
	if censored {
		m.censored.Inc()
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordProcess(stats contract.ProcessStats) {
	m.rss.Set(float64(stats.RSSBytes))
	m.cpu.Set(stats.CPUPercent)
	m.goroutines.Set(float64(stats.Goroutines))
}
