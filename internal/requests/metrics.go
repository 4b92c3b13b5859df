package requests

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeResults   = "results"
	outcomeNoResults = "no_results"
	outcomeError     = "error"
)

// Metrics holds the Prometheus collectors updated by a Queue.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	ResultsCount     prometheus.Histogram
	NoResultRequests prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_requests_total",
				Help: "Total search requests by outcome (results, no_results, error).",
			},
			[]string{"outcome"},
		),
		ResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of documents returned per search request.",
				Buckets: []float64{0, 1, 2, 3, 4, 5},
			},
		),
		NoResultRequests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "search_no_result_requests",
				Help: "Requests with no results among the tracked window.",
			},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.RequestsTotal, m.ResultsCount, m.NoResultRequests} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(outcome string, resultCount int, noResults int) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(outcome).Inc()
	if outcome != outcomeError {
		m.ResultsCount.Observe(float64(resultCount))
	}
	m.NoResultRequests.Set(float64(noResults))
}
