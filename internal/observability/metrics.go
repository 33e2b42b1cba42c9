package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookFetchAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_webhook_fetch_attempts_total",
		Help: "Total number of fetch attempts against the upstream webhook store.",
	})

	WebhookFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_webhook_fetch_failures_total",
		Help: "Total number of failed webhook fetch attempts.",
	})

	WebhookCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_webhook_cache_hits_total",
		Help: "Total number of fetches served from the fresh in-process cache.",
	})

	WebhookStaleFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_webhook_stale_fallbacks_total",
		Help: "Total number of fetches answered with a stale cached payload after all retries failed.",
	})

	EventsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_events_skipped_total",
		Help: "Total number of malformed webhook events skipped, labelled by aggregation section.",
	}, []string{"section"})
)
