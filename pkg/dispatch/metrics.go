package dispatch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the dispatcher's prometheus collectors. A nil *Metrics
// records nothing.
type Metrics struct {
	commands   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	queueDepth prometheus.Gauge
	running    prometheus.Gauge
}

// NewMetrics registers the dispatcher collectors with reg. A nil reg means
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "owl",
			Subsystem: "dispatch",
			Name:      "commands_total",
			Help:      "Commands handled by the dispatcher, by outcome.",
		}, []string{"command", "outcome"}),

		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "owl",
			Subsystem: "dispatch",
			Name:      "call_duration_seconds",
			Help:      "Duration of libcec calls made for a command.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"command"}),

		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "owl",
			Subsystem: "dispatch",
			Name:      "queue_depth",
			Help:      "Commands waiting in the dispatcher queue.",
		}),

		running: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "owl",
			Subsystem: "dispatch",
			Name:      "running",
			Help:      "1 while the dispatcher worker owns an open connection.",
		}),
	}
}

func (m *Metrics) outcome(cmd Command, outcome string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(cmd.String(), outcome).Inc()
}

func (m *Metrics) call(cmd Command, d time.Duration) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(cmd.String()).Observe(d.Seconds())
}

func (m *Metrics) depth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}

func (m *Metrics) setRunning(up bool) {
	if m == nil {
		return
	}
	if up {
		m.running.Set(1)
	} else {
		m.running.Set(0)
	}
}
