// Package metrics exposes prometheus counters for the receiver.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UploadsStored = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "datalake_receiver",
		Name:      "uploads_stored_total",
		Help:      "Total uploads successfully persisted.",
	})
	UploadFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "datalake_receiver",
		Name:      "upload_failures_total",
		Help:      "Total uploads rejected by the storage backend.",
	})
	BytesStored = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "datalake_receiver",
		Name:      "upload_bytes_total",
		Help:      "Total payload bytes successfully persisted.",
	})
	Unauthorized = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "datalake_receiver",
		Name:      "unauthorized_total",
		Help:      "Total requests rejected by the bearer-token gate.",
	})
)

// Init registers collectors; call once from main.
func Init() {
	prometheus.MustRegister(UploadsStored, UploadFailures, BytesStored, Unauthorized)
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
