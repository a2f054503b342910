package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts notifier runs by outcome.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posad",
			Subsystem: "notifier",
			Name:      "runs_total",
			Help:      "Total number of notifier runs",
		},
		[]string{"status"},
	)

	// RunDuration measures how long a run takes.
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "posad",
			Subsystem: "notifier",
			Name:      "run_duration_seconds",
			Help:      "Duration of notifier runs in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// ProductsNotified counts products stamped as notified.
	ProductsNotified = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "posad",
			Subsystem: "notifier",
			Name:      "products_notified_total",
			Help:      "Total number of products marked as notified",
		},
	)

	// MessagesSent counts messages accepted by the sender.
	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "posad",
			Subsystem: "notifier",
			Name:      "messages_sent_total",
			Help:      "Total number of notification messages handed off",
		},
	)

	// SendFailures counts messages the sender rejected.
	SendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "posad",
			Subsystem: "notifier",
			Name:      "send_failures_total",
			Help:      "Total number of notification messages that failed to send",
		},
	)
)

func recordRun(status string, seconds float64, result RunResult) {
	RunsTotal.WithLabelValues(status).Inc()
	RunDuration.Observe(seconds)
	ProductsNotified.Add(float64(result.Notified))
	MessagesSent.Add(float64(result.Sent))
	SendFailures.Add(float64(result.Failed))
}
