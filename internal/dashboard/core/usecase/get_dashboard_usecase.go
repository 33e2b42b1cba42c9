package usecase

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"sales-dashboard-service/internal/dashboard/core/domain"
	"sales-dashboard-service/internal/dashboard/core/ports"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

type DashboardData struct {
	NewEnrollments []domain.OfficerAggregate
	MonthlyRevenue []domain.OfficerAggregate
	UpcomingDemos  int
	MonthlyGoal    int
	// NewSalesOfficer is empty when no officer's demo count changed since
	// the previous composition.
	NewSalesOfficer string
}

const topEnrollments = 3

// GetDashboardUseCase composes the dashboard payload: it aggregates, upserts
// the per-officer snapshot, and detects a newly changed demo count against
// process-lifetime state.
type GetDashboardUseCase struct {
	revenue   *MonthlyRevenueUseCase
	snapshots ports.SalesSnapshotPort
	goals     ports.GoalRepositoryPort

	mu        sync.Mutex
	lastDemos map[string]int
}

func NewGetDashboardUseCase(
	revenue *MonthlyRevenueUseCase,
	snapshots ports.SalesSnapshotPort,
	goals ports.GoalRepositoryPort,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		revenue:   revenue,
		snapshots: snapshots,
		goals:     goals,
		lastDemos: make(map[string]int),
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, events []webhookdomain.RawEvent) (*DashboardData, error) {
	sales := uc.revenue.AggregateByDemos(events)

	for i := range sales {
		if err := uc.snapshots.UpsertOfficer(ctx, &sales[i]); err != nil {
			return nil, err
		}
	}

	newEnrollments := append([]domain.OfficerAggregate(nil), sales...)
	sort.SliceStable(newEnrollments, func(i, j int) bool { return newEnrollments[i].Demos > newEnrollments[j].Demos })
	if len(newEnrollments) > topEnrollments {
		newEnrollments = newEnrollments[:topEnrollments]
	}

	monthlyRevenue := append([]domain.OfficerAggregate(nil), sales...)
	sort.SliceStable(monthlyRevenue, func(i, j int) bool { return monthlyRevenue[i].Value > monthlyRevenue[j].Value })

	upcomingDemos := 0
	for _, s := range sales {
		upcomingDemos += s.Demos
	}

	goal, err := uc.goals.CurrentGoal(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		NewEnrollments:  newEnrollments,
		MonthlyRevenue:  monthlyRevenue,
		UpcomingDemos:   upcomingDemos,
		MonthlyGoal:     goal,
		NewSalesOfficer: uc.detectNewSale(sales),
	}, nil
}

// detectNewSale returns the first officer whose demo count moved since the
// last composition and records the new count.
func (uc *GetDashboardUseCase) detectNewSale(sales []domain.OfficerAggregate) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, s := range sales {
		if s.Demos > 0 && s.Demos != uc.lastDemos[s.Name] {
			uc.lastDemos[s.Name] = s.Demos
			slog.Info("new sale detected", "officer", s.Name, "demos", s.Demos)
			return s.Name
		}
	}
	return ""
}
