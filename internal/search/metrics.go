package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchDuration tracks the full evaluate+sort+paginate pass.
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_pipeline_duration_seconds",
		Help:    "Time taken by the filter/sort/paginate pipeline",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	// resultCount tracks how many products survive filtering.
	resultCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_result_count",
		Help:    "Number of products matching a search",
		Buckets: []float64{0, 1, 5, 20, 50, 100, 500, 1000, 5000},
	})

	// filterUsage counts how often each filter field is active in a search.
	filterUsage = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_filter_usage_total",
		Help: "Searches with the given filter field active",
	}, []string{"field"})

	// emptyResults counts searches that matched nothing.
	emptyResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_empty_results_total",
		Help: "Searches returning zero products",
	})
)

// RecordSearch reports one pipeline run to the metrics registry.
func RecordSearch(f FilterState, matched int, elapsed time.Duration) {
	searchDuration.Observe(elapsed.Seconds())
	resultCount.Observe(float64(matched))
	if matched == 0 {
		emptyResults.Inc()
	}

	if len(f.Maker) > 0 {
		filterUsage.WithLabelValues("maker").Inc()
	}
	if len(f.CPU) > 0 {
		filterUsage.WithLabelValues("cpu").Inc()
	}
	if len(f.GPU) > 0 {
		filterUsage.WithLabelValues("gpu").Inc()
	}
	if len(f.Memory) > 0 {
		filterUsage.WithLabelValues("memory").Inc()
	}
	if len(f.Storage) > 0 {
		filterUsage.WithLabelValues("storage").Inc()
	}
	if f.PriceMin != DefaultPriceMin || f.PriceMax != DefaultPriceMax {
		filterUsage.WithLabelValues("price").Inc()
	}
	if f.OnSale {
		filterUsage.WithLabelValues("sale").Inc()
	}
	if f.SearchKeyword != "" {
		filterUsage.WithLabelValues("keyword").Inc()
	}
}
