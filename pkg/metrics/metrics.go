package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zonemap_http_requests_total",
		Help: "Total number of API requests by route and status code",
	}, []string{"method", "route", "code"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "zonemap_http_request_duration_ms",
		Help:    "API request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "route"})
	FeaturesWithoutGeometry = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zonemap_features_without_geometry_total",
		Help: "Entities left out of a map feed because they have neither vertices nor a Lambert point",
	}, []string{"entity"})
	ImportedParcels = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zonemap_imported_parcels_total",
		Help: "Parcels read by the spreadsheet importer by outcome",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(FeaturesWithoutGeometry)
	prometheus.MustRegister(ImportedParcels)
}

// Handler exposes the registered metrics on /metrics.
func Handler() http.Handler { return promhttp.Handler() }
