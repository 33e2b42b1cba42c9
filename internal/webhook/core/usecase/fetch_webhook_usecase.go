package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"sales-dashboard-service/internal/observability"
	"sales-dashboard-service/internal/webhook/core/domain"
	"sales-dashboard-service/internal/webhook/core/ports"
)

var ErrSourceUnavailable = errors.New("webhook source unavailable and no cached payload")

const (
	DefaultCacheTTL   = 5 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 * time.Second
)

type Config struct {
	CacheTTL   time.Duration
	MaxRetries int
	// RetryDelay is the linear backoff base: attempt n waits n * RetryDelay
	// before the next try.
	RetryDelay time.Duration

	// Now and Sleep are overridable for tests; nil means the real clock.
	Now   func() time.Time
	Sleep func(time.Duration)
}

func DefaultConfig() Config {
	return Config{
		CacheTTL:   DefaultCacheTTL,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// FetchWebhookUseCase owns the one piece of shared mutable state in the
// system: the last known-good payload and its success timestamp. The cache
// is only ever written after a verified successful fetch.
type FetchWebhookUseCase struct {
	source ports.WebhookSourcePort
	cfg    Config

	mu          sync.Mutex
	cache       []domain.RawEvent
	lastSuccess time.Time
}

func NewFetchWebhookUseCase(source ports.WebhookSourcePort, cfg Config) *FetchWebhookUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &FetchWebhookUseCase{source: source, cfg: cfg}
}

// Execute returns the cached payload when it is younger than CacheTTL,
// otherwise refetches with bounded retries. The mutex spans the whole call
// so the freshness check and the cache write cannot race on a slow response.
func (uc *FetchWebhookUseCase) Execute(ctx context.Context) ([]domain.RawEvent, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cache != nil && uc.cfg.Now().Sub(uc.lastSuccess) < uc.cfg.CacheTTL {
		observability.WebhookCacheHits.Inc()
		slog.Debug("returning cached webhook payload")
		return uc.cache, nil
	}

	for attempt := 1; attempt <= uc.cfg.MaxRetries; attempt++ {
		slog.Info("fetching webhook data", "attempt", attempt, "max_retries", uc.cfg.MaxRetries)
		observability.WebhookFetchAttempts.Inc()

		events, err := uc.source.FetchEvents(ctx)
		if err == nil {
			uc.cache = events
			uc.lastSuccess = uc.cfg.Now()
			slog.Info("webhook fetch succeeded", "events", len(events))
			return events, nil
		}

		observability.WebhookFetchFailures.Inc()
		slog.Error("webhook fetch failed", "attempt", attempt, "err", err)

		if attempt < uc.cfg.MaxRetries {
			uc.cfg.Sleep(time.Duration(attempt) * uc.cfg.RetryDelay)
		}
	}

	// The cache was only ever set on success, so even a stale copy is a
	// known-good payload.
	if uc.cache != nil {
		observability.WebhookStaleFallbacks.Inc()
		slog.Warn("using stale cached payload after all retries failed")
		return uc.cache, nil
	}

	return nil, ErrSourceUnavailable
}
