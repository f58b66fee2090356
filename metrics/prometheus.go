// Package metrics exports registry activity as Prometheus metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aponysus/nameref/observe"
	"github.com/aponysus/nameref/registry"
)

// PrometheusObserver counts registry mutations and tracks the number of bound
// names. Register it with registry.WithObserver.
type PrometheusObserver struct {
	observe.BaseObserver

	operations *prometheus.CounterVec
	rejections *prometheus.CounterVec
	entries    prometheus.Gauge
}

// NewPrometheusObserver creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nameref",
				Subsystem: "registry",
				Name:      "operations_total",
				Help:      "Registry mutations by operation.",
			},
			[]string{"op"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nameref",
				Subsystem: "registry",
				Name:      "rejections_total",
				Help:      "Rejected registry operations by reason.",
			},
			[]string{"reason"},
		),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nameref",
			Subsystem: "registry",
			Name:      "entries",
			Help:      "Number of names currently bound.",
		}),
	}
	reg.MustRegister(o.operations, o.rejections, o.entries)
	return o
}

func (o *PrometheusObserver) OnInsert(observe.Event) {
	o.operations.WithLabelValues(string(observe.OpInsert)).Inc()
	o.entries.Inc()
}

func (o *PrometheusObserver) OnRemove(observe.Event) {
	o.operations.WithLabelValues(string(observe.OpRemove)).Inc()
	o.entries.Dec()
}

func (o *PrometheusObserver) OnTransfer(observe.Event) {
	o.operations.WithLabelValues(string(observe.OpTransfer)).Inc()
}

func (o *PrometheusObserver) OnReject(ev observe.Event) {
	o.rejections.WithLabelValues(Reason(ev.Err)).Inc()
}

// Reason maps a registry error to a low-cardinality label value.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, registry.ErrDuplicateName):
		return "duplicate"
	case errors.Is(err, registry.ErrEmptyName):
		return "empty_name"
	case errors.Is(err, registry.ErrNameNotFound):
		return "not_found"
	case errors.Is(err, registry.ErrNilHandle):
		return "nil_handle"
	default:
		return "other"
	}
}
