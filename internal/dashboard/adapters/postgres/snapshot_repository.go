package postgres

import (
	"context"

	"sales-dashboard-service/internal/dashboard/core/domain"
	"sales-dashboard-service/internal/dashboard/core/ports"
)

type SnapshotRepository struct {
	db DB
}

func NewSnapshotRepository(db DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ ports.SalesSnapshotPort = (*SnapshotRepository)(nil)

// SQL template
const upsertSalesSQL = `
INSERT INTO sales_data (name, value, demos)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE
SET value = EXCLUDED.value,
    demos = EXCLUDED.demos;
`

func (r *SnapshotRepository) UpsertOfficer(ctx context.Context, agg *domain.OfficerAggregate) error {
	_, err := r.db.ExecContext(ctx, upsertSalesSQL, agg.Name, agg.Value, agg.Demos)
	return err
}
