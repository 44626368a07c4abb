package cubesim

import "github.com/prometheus/client_golang/prometheus"

// Batch outcomes recorded by Metrics.
const (
	outcomeCompleted = "completed"
	outcomeCancelled = "cancelled"
	outcomeReset     = "reset"
)

// Metrics holds the Prometheus instruments of an engine. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	movesCompleted *prometheus.CounterVec
	batches        *prometheus.CounterVec
	queueDepth     prometheus.Gauge
	historyLength  prometheus.Gauge
}

// NewMetrics creates the engine instruments and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		movesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cubesim",
			Name:      "moves_completed_total",
			Help:      "Quarter turns fully animated and snapped, by axis.",
		}, []string{"axis"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cubesim",
			Name:      "batches_total",
			Help:      "Finished scramble, solve and turn batches, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cubesim",
			Name:      "queue_depth",
			Help:      "Moves waiting to be animated.",
		}),
		historyLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cubesim",
			Name:      "history_length",
			Help:      "Moves needed to return to solved.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.movesCompleted, m.batches, m.queueDepth, m.historyLength)
	}
	return m
}

func (m *Metrics) moveCompleted(mv Move) {
	if m == nil {
		return
	}
	m.movesCompleted.WithLabelValues(mv.Axis.String()).Inc()
}

func (m *Metrics) batchFinished(kind BatchKind, outcome string) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(kind.String(), outcome).Inc()
}

func (m *Metrics) observe(queue, history int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(queue))
	m.historyLength.Set(float64(history))
}
