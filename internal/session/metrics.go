package session

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records processor activity.
type Metrics struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	palettes prometheus.Gauge
}

// NewMetrics creates processor metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "duotone",
			Subsystem: "session",
			Name:      "commands_total",
			Help:      "Commands applied by the session processor, by command and result.",
		}, []string{"command", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "duotone",
			Subsystem: "session",
			Name:      "command_duration_seconds",
			Help:      "Time spent applying a command.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"command"}),
		palettes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "duotone",
			Subsystem: "session",
			Name:      "palettes",
			Help:      "Palettes held by the session.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.commands, m.duration, m.palettes)
	}
	return m
}

func (m *Metrics) observe(command string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.commands.WithLabelValues(command, result).Inc()
	m.duration.WithLabelValues(command).Observe(time.Since(started).Seconds())
}
