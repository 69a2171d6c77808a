package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// Serialization metrics
	EventsSerialized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cef_events_serialized_total",
			Help: "Total number of events passed to the serializer",
		},
		[]string{"status"},
	)

	SerializeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cef_serialize_errors_total",
			Help: "Total number of serialization failures by offending field",
		},
		[]string{"field"},
	)

	SerializeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cef_serialize_duration_seconds",
			Help:    "Duration of event serialization in seconds",
			Buckets: []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005},
		},
	)

	EventBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cef_event_bytes_total",
			Help: "Total bytes of CEF lines produced",
		},
	)

	// Input metrics
	EventsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cef_events_rejected_total",
			Help: "Total number of event descriptions that failed validation",
		},
		[]string{"field"},
	)
)

// WriteTextfile writes every registered metric to path in the Prometheus text
// format, for collection by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
