package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Article metrics track editorial activity
var (
	// ArticleMutationsTotal counts article writes by operation (create, update, delete, regenerate_slug)
	ArticleMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herald_article_mutations_total",
			Help: "Total number of article writes",
		},
		[]string{"operation"},
	)

	// ArticleViewsTotal counts view increments
	ArticleViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "herald_article_views_total",
			Help: "Total number of article views recorded",
		},
	)

	// BatchDeleteOutcomes counts per-item outcomes of batch deletes
	BatchDeleteOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herald_article_batch_delete_items_total",
			Help: "Per-item outcomes of batch article deletes",
		},
		[]string{"outcome"}, // outcome: deleted, not_found, failed
	)

	// ArticlesTotal is the article count observed by the last dashboard overview
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "herald_articles_total",
			Help: "Number of articles seen by the last admin overview",
		},
	)
)

// Breaking news metrics
var (
	// BreakingNewsAddedTotal counts added items by origin (manual, feed)
	BreakingNewsAddedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herald_breaking_news_added_total",
			Help: "Total number of breaking news items added",
		},
		[]string{"origin"},
	)

	// FeedImportDuration measures time to import a wire feed
	FeedImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "herald_feed_import_duration_seconds",
			Help:    "Time taken to import a wire feed",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)
)

// Text generation metrics
var (
	// GenerationRequestsTotal counts generation requests by task and status
	GenerationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herald_generation_requests_total",
			Help: "Total number of text generation requests",
		},
		[]string{"task", "status"},
	)

	// GenerationDuration measures text generation latency per task
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "herald_generation_duration_seconds",
			Help:    "Time taken to generate text",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"task"},
	)

	// GenerationLength measures generated text length in characters
	GenerationLength = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "herald_generation_length_chars",
			Help:    "Length of generated text in characters",
			Buckets: []float64{50, 100, 200, 400, 800, 1600, 3200, 6400, 12800},
		},
		[]string{"task"},
	)
)

// Content extraction metrics
var (
	// ContentFetchAttemptsTotal counts source extraction attempts by result
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herald_content_fetch_attempts_total",
			Help: "Total number of source content fetch attempts",
		},
		[]string{"result"}, // result: success, failure
	)

	// ContentFetchDuration measures time to fetch and extract a source page
	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "herald_content_fetch_duration_seconds",
			Help:    "Time taken to fetch source content",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)
)

// Store metrics track document store latency
var (
	// StoreOperationDuration measures repository call duration
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "herald_store_operation_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "status"},
	)
)
