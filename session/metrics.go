package session

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/graphview/plot"
)

const metricsNamespace = "graphview"

// Validation results used as the "result" label.
const (
	resultOK        = "ok"
	resultCorrected = "corrected"
	resultRejected  = "rejected"
)

// Metrics holds the session collectors. A nil *Metrics records nothing, so
// sessions built without WithMetrics pay only a nil check.
type Metrics struct {
	selections  *prometheus.CounterVec
	validations *prometheus.CounterVec
	renders     *prometheus.CounterVec
	points      prometheus.Histogram
	duration    prometheus.Histogram
}

// NewMetrics registers the session collectors with reg. Registering twice
// on the same registry panics (promauto semantics); share one *Metrics
// between sessions instead.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// selections counts SelectFunction calls.
		// Labels: function ("" for the blank entry)
		selections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "selections_total",
			Help:      "Function selections by function name",
		}, []string{"function"}),

		// validations counts ApplyParameters outcomes.
		// Labels: result (ok, corrected, rejected), kind (error kind or "")
		validations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "validations_total",
			Help:      "Parameter validations by result and error kind",
		}, []string{"result", "kind"}),

		// renders counts pipeline runs.
		// Labels: function
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "renders_total",
			Help:      "Curves rendered by function name",
		}, []string{"function"}),

		points: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "render_points",
			Help:      "Sample points per rendered curve",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 6),
		}),

		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "render_duration_seconds",
			Help:      "Sampling pipeline latency in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}
}

func (m *Metrics) observeSelection(sel plot.Selection) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(sel.String()).Inc()
}

func (m *Metrics) observeValidation(result string, kind string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(result, kind).Inc()
}

func (m *Metrics) observeRender(sel plot.Selection, points int, took time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(sel.String()).Inc()
	m.points.Observe(float64(points))
	m.duration.Observe(took.Seconds())
}
