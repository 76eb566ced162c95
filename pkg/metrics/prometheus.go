package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FlightsDelayed        prometheus.Counter
	FlightsCancelled      prometheus.Counter
	NotificationsAppended *prometheus.CounterVec
	RefundsSubmitted      prometheus.Counter
	RefundsResolved       *prometheus.CounterVec
	DeliveriesSent        *prometheus.CounterVec
	DeliveriesFailed      *prometheus.CounterVec
	EventsPublished       prometheus.Counter
	MutationTime          prometheus.Histogram
	ErrorsCount           *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on the default registry
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer, namespace)
}

// NewMetricsWith registers the metrics on reg; tests pass a fresh registry
func NewMetricsWith(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FlightsDelayed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_delayed_total",
			Help:      "The total number of applied delays",
		}),
		FlightsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_cancelled_total",
			Help:      "The total number of applied cancellations",
		}),
		NotificationsAppended: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_appended_total",
			Help:      "The total number of notifications appended",
		}, []string{"type"}),
		RefundsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunds_submitted_total",
			Help:      "The total number of refund requests accepted",
		}),
		RefundsResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunds_resolved_total",
			Help:      "The total number of refund requests resolved",
		}, []string{"status"}),
		DeliveriesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_sent_total",
			Help:      "The total number of passenger messages delivered",
		}, []string{"channel"}),
		DeliveriesFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_failed_total",
			Help:      "The total number of passenger messages that failed",
		}, []string{"channel"}),
		EventsPublished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "The total number of disruption events published",
		}),
		MutationTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_mutation_time_seconds",
			Help:      "Time taken to apply a delay or cancellation",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
