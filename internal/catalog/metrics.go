package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// fallbackLoads counts snapshot refreshes that fell back to the static
// dataset. A non-flat rate here means the product source is down.
var fallbackLoads = promauto.NewCounter(prometheus.CounterOpts{
	Name: "catalog_fallback_loads_total",
	Help: "Catalog refreshes served from the static fallback dataset",
})
