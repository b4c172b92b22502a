package diag

import "github.com/prometheus/client_golang/prometheus"

var diagnosticsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hiprt_diagnostics_total",
		Help: "Total number of non-fatal runtime diagnostics reported, by kind.",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(diagnosticsTotal)
}

func observeReport(r Report) {
	diagnosticsTotal.WithLabelValues(r.Kind.String()).Inc()
}
