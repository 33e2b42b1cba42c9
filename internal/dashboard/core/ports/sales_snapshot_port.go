package ports

import (
	"context"

	"sales-dashboard-service/internal/dashboard/core/domain"
)

type SalesSnapshotPort interface {
	// UpsertOfficer writes one officer aggregate, keyed by name.
	UpsertOfficer(ctx context.Context, agg *domain.OfficerAggregate) error
}
