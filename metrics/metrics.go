// Package metrics exposes Prometheus counters for message delivery.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "friendnet"

// Failure reasons recorded by ObserveFailure.
const (
	ReasonNoRoute       = "no_route"
	ReasonUnknownPerson = "unknown_person"
	ReasonAlreadyRouted = "already_routed"
)

// Collector records delivery outcomes. A nil *Collector is valid and records
// nothing.
type Collector struct {
	delivered *prometheus.CounterVec
	failures  *prometheus.CounterVec
	hops      prometheus.Histogram
}

// NewCollector creates the delivery metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		delivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_delivered_total",
				Help:      "Messages appended to a receiver's mailbox, by message type.",
			},
			[]string{"type"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "delivery_failures_total",
				Help:      "Send attempts that delivered nothing, by reason.",
			},
			[]string{"reason"},
		),
		hops: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "route_hops",
				Help:      "Number of friendship hops on delivered routes.",
				Buckets:   prometheus.LinearBuckets(0, 1, 8),
			},
		),
	}

	for _, col := range []prometheus.Collector{c.delivered, c.failures, c.hops} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveDelivery records a successful delivery over a route of routeLen ids.
func (c *Collector) ObserveDelivery(msgType string, routeLen int) {
	if c == nil {
		return
	}
	c.delivered.WithLabelValues(msgType).Inc()
	c.hops.Observe(float64(routeLen - 1))
}

// ObserveFailure records a send that delivered nothing.
func (c *Collector) ObserveFailure(reason string) {
	if c == nil {
		return
	}
	c.failures.WithLabelValues(reason).Inc()
}
