package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records action executions in Prometheus.
type Metrics struct {
	executions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inflight   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htn_action_executions_total",
				Help: "Total number of action executions by outcome",
			},
			[]string{"action", "variant", "success"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "htn_action_duration_seconds",
				Help:    "Duration of action executions",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"action", "variant"},
		),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "htn_actions_inflight",
			Help: "Number of actions currently running",
		}),
	}

	for _, c := range []prometheus.Collector{m.executions, m.duration, m.inflight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionStart: func(ctx context.Context, e *domain.ActionEvent) {
			m.inflight.Inc()
		},
		OnActionFinish: func(ctx context.Context, e *domain.ActionEvent) {
			m.inflight.Dec()
			variant := string(e.Variant)
			m.executions.WithLabelValues(e.Action, variant, strconv.FormatBool(e.Success)).Inc()
			m.duration.WithLabelValues(e.Action, variant).Observe(e.Duration.Seconds())
		},
	}
}
