// Package metrics provides Prometheus metrics for the pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the process-wide Prometheus registry.
var Registry = prometheus.NewRegistry()

var (
	ReadingsIngested = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sensor_readings_ingested_total",
		Help: "Readings normalized and persisted.",
	})
	MessagesDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sensor_messages_dropped_total",
		Help: "Inbound messages dropped, by reason.",
	}, []string{"reason"})
	CommandsDispatched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "relay_commands_dispatched_total",
		Help: "Relay commands published to the control topic.",
	})
	CommandsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "relay_commands_rejected_total",
		Help: "Relay commands rejected as invalid.",
	})
)

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	Registry.MustRegister(ReadingsIngested, MessagesDropped, CommandsDispatched, CommandsRejected)
}

// Handler exposes the registry over HTTP.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
