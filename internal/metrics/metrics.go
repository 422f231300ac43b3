package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vitals",
			Name:      "calculations_total",
			Help:      "Count of successful calculations by calculator.",
		},
		[]string{"calculator"},
	)

	calculationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vitals",
			Name:      "calculation_errors_total",
			Help:      "Count of rejected calculations by calculator and error kind.",
		},
		[]string{"calculator", "kind"},
	)

	reports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vitals",
			Name:      "reports_total",
			Help:      "Count of generated PDF reports by calculator.",
		},
		[]string{"calculator"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(calculations, calculationErrors, reports)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncCalculation(calculator string) {
	calculations.WithLabelValues(calculator).Inc()
}

func IncError(calculator, kind string) {
	if kind == "" {
		kind = "internal"
	}
	calculationErrors.WithLabelValues(calculator, kind).Inc()
}

func IncReport(calculator string) {
	reports.WithLabelValues(calculator).Inc()
}
