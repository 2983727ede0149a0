package pricing

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	// quoteCalculations counts completed quote calculations.
	quoteCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_calculations_total",
		Help: "Total number of quote calculations by catalog and selection",
	}, []string{"catalog", "selection"})

	// quoteErrors counts failed calculations (unknown selections, mostly).
	quoteErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_calculation_errors_total",
		Help: "Total number of failed quote calculations by catalog",
	}, []string{"catalog"})

	// quoteDuration tracks calculation latency. Calculations are pure CPU
	// work, so the buckets sit well below typical HTTP latencies.
	quoteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_calculation_duration_seconds",
		Help:    "Time taken to calculate a quote by catalog",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}, []string{"catalog"})

	// quoteTotalAED tracks the distribution of quoted totals.
	quoteTotalAED = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_total_aed",
		Help:    "Distribution of quoted totals in AED",
		Buckets: []float64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
	})
)

func recordQuote(catalogName, selection string, total decimal.Decimal, d time.Duration) {
	quoteCalculations.WithLabelValues(catalogName, selection).Inc()
	quoteDuration.WithLabelValues(catalogName).Observe(d.Seconds())
	quoteTotalAED.Observe(total.InexactFloat64())
}

func recordQuoteError(catalogName string) {
	quoteErrors.WithLabelValues(catalogName).Inc()
}
