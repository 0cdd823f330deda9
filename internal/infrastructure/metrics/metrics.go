package metrics

import (
	"doctor-listing/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ListingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "doctor_listing_requests_total",
			Help: "Total number of doctor listing derivations by sort key",
		},
		[]string{"sort"},
	)

	ListingResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "doctor_listing_result_size",
			Help:    "Number of doctors in a derived listing",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	SuggestionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "doctor_suggestion_requests_total",
			Help: "Total number of autocomplete lookups by visibility",
		},
		[]string{"visible"},
	)

	FilterEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "doctor_filter_events_total",
			Help: "Total number of applied filter events by type",
		},
		[]string{"type"},
	)

	StoreLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "doctor_store_load_failures_total",
			Help: "Total number of failed record store loads by source",
		},
		[]string{"source"},
	)
)

// SortLabel bounds the sort label to none, fees, experience or other.
// Sort keys come straight from the query string.
func SortLabel(key entity.SortKey) string {
	switch {
	case key == entity.SortNone:
		return "none"
	case key.IsKnown():
		return string(key)
	default:
		return "other"
	}
}
