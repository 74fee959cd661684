package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "directorio_http_requests_total",
		Help: "Peticiones HTTP atendidas por método, ruta y código",
	}, []string{"method", "route", "status"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "directorio_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"method", "route"})
	ActivityClosureSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "directorio_activity_closure_size",
		Help:    "Cantidad de actividades en la clausura calculada por búsqueda",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
	})
	RadiusCandidates = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "directorio_radius_candidates",
		Help:    "Edificios evaluados por el filtro de radio tras el prefiltro rectangular",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(ActivityClosureSize)
	prometheus.MustRegister(RadiusCandidates)
}

// Handler expone el registro por defecto en formato Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
