package metrics

import "github.com/prometheus/client_golang/prometheus"

// Analysis Prometheus metrics.
var (
	StringsAnalyzedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "strand",
			Name:      "strings_analyzed_total",
			Help:      "Total number of strings analyzed and stored",
		},
	)

	RecordsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "strand",
			Name:      "records_stored",
			Help:      "Number of records currently in the store",
		},
	)

	QueryParseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "strand",
			Name:      "nl_query_parse_total",
			Help:      "Natural-language query parse outcomes",
		},
		[]string{"outcome"}, // "parsed" / "unparsable"
	)
)

var analysisMetricsRegistered bool

// RegisterAnalysisMetrics registers analysis metrics. Must be called once from serve.
func RegisterAnalysisMetrics() {
	if analysisMetricsRegistered {
		return
	}
	prometheus.MustRegister(StringsAnalyzedTotal)
	prometheus.MustRegister(RecordsStored)
	prometheus.MustRegister(QueryParseTotal)
	analysisMetricsRegistered = true
}
