package ports

import (
	"context"

	"sales-dashboard-service/internal/webhook/core/domain"
)

type WebhookSourcePort interface {
	// FetchEvents performs a single remote fetch attempt. Transport
	// failures and malformed bodies are both surfaced as errors; retry
	// policy lives in the usecase, not here.
	FetchEvents(ctx context.Context) ([]domain.RawEvent, error)
}
