// Package metrics exposes widget factory activity as Prometheus metrics.
// A Collector is a factory.Observer; install it through
// factory.Options.Observer and register it with a Prometheus registry.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/tk/pkg/factory"
)

// Collector counts registrations, creations and misses.
type Collector struct {
	registered prometheus.Counter
	created    *prometheus.CounterVec
	misses     *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its instruments with reg.
// A nil reg skips registration.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		registered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tk",
			Name:      "widget_types_registered_total",
			Help:      "Cumulative number of runtime widget type registrations.",
		}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tk",
			Name:      "widgets_created_total",
			Help:      "Constructor invocations by type, resolving table and outcome.",
		}, []string{"type", "source", "ok"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tk",
			Name:      "widget_create_misses_total",
			Help:      "Widget creations whose type name no table resolved.",
		}, []string{"type"}),
	}
	if reg != nil {
		for _, col := range []prometheus.Collector{c.registered, c.created, c.misses} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// TypeRegistered implements factory.Observer.
func (c *Collector) TypeRegistered(string) {
	c.registered.Inc()
}

// WidgetCreated implements factory.Observer.
func (c *Collector) WidgetCreated(name string, src factory.Source, ok bool) {
	c.created.WithLabelValues(name, src.String(), strconv.FormatBool(ok)).Inc()
}

// WidgetMissed implements factory.Observer.
func (c *Collector) WidgetMissed(name string) {
	c.misses.WithLabelValues(name).Inc()
}

var _ factory.Observer = (*Collector)(nil)
