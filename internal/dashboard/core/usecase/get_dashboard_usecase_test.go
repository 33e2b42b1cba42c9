package usecase_test

import (
	"context"
	"errors"
	"testing"

	"sales-dashboard-service/internal/dashboard/core/domain"
	"sales-dashboard-service/internal/dashboard/core/usecase"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

// fakeSnapshotPort implements SalesSnapshotPort.
type fakeSnapshotPort struct {
	UpsertFn func(ctx context.Context, agg *domain.OfficerAggregate) error
	upserted []domain.OfficerAggregate
}

func (f *fakeSnapshotPort) UpsertOfficer(ctx context.Context, agg *domain.OfficerAggregate) error {
	f.upserted = append(f.upserted, *agg)
	if f.UpsertFn != nil {
		return f.UpsertFn(ctx, agg)
	}
	return nil
}

// fakeGoalPort implements GoalRepositoryPort.
type fakeGoalPort struct {
	goal    int
	goalErr error
	setGoal int
	setErr  error
}

func (f *fakeGoalPort) CurrentGoal(ctx context.Context) (int, error) {
	return f.goal, f.goalErr
}

func (f *fakeGoalPort) SetGoal(ctx context.Context, goal int) error {
	f.setGoal = goal
	return f.setErr
}

func newDashboardUC(t *testing.T, snapshots *fakeSnapshotPort, goals *fakeGoalPort) *usecase.GetDashboardUseCase {
	t.Helper()
	clock := testClock(t, fixedNow)
	revenue := usecase.NewMonthlyRevenueUseCase(clock, usecase.NewInitialPaymentsUseCase(clock))
	return usecase.NewGetDashboardUseCase(revenue, snapshots, goals)
}

func dashboardEvents() []webhookdomain.RawEvent {
	inMonth := fixedNow.AddDate(0, 0, -2)
	return []webhookdomain.RawEvent{
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "Leadsales": "yes", "Paymentamount": "100"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "Leadsales": "yes", "Paymentamount": "100"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "B", "Leadsales": "yes", "Paymentamount": "500"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "C", "Paymentamount": "50"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "D", "Leadsales": "yes", "Paymentamount": "10"}),
	}
}

func TestGetDashboard_ComposesAllSections(t *testing.T) {
	snapshots := &fakeSnapshotPort{}
	goals := &fakeGoalPort{goal: 150}
	uc := newDashboardUC(t, snapshots, goals)

	data, err := uc.Execute(context.Background(), dashboardEvents())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.NewEnrollments) != 3 {
		t.Fatalf("expected top-3 enrollments, got %d", len(data.NewEnrollments))
	}
	if data.NewEnrollments[0].Name != "A" || data.NewEnrollments[0].Demos != 2 {
		t.Fatalf("expected A=2 demos first, got %+v", data.NewEnrollments[0])
	}

	if len(data.MonthlyRevenue) != 4 {
		t.Fatalf("expected 4 officers in revenue list, got %d", len(data.MonthlyRevenue))
	}
	if data.MonthlyRevenue[0].Name != "B" || data.MonthlyRevenue[0].Value != 500 {
		t.Fatalf("expected B=500 first by revenue, got %+v", data.MonthlyRevenue[0])
	}

	if data.UpcomingDemos != 4 {
		t.Fatalf("expected 4 total demos, got %d", data.UpcomingDemos)
	}
	if data.MonthlyGoal != 150 {
		t.Fatalf("expected goal 150, got %d", data.MonthlyGoal)
	}

	// Every officer aggregate was persisted.
	if len(snapshots.upserted) != 4 {
		t.Fatalf("expected 4 snapshot upserts, got %d", len(snapshots.upserted))
	}
}

func TestGetDashboard_NewSaleDetectedOnceUntilCountChanges(t *testing.T) {
	snapshots := &fakeSnapshotPort{}
	goals := &fakeGoalPort{goal: 120}
	uc := newDashboardUC(t, snapshots, goals)

	first, err := uc.Execute(context.Background(), dashboardEvents())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.NewSalesOfficer == "" {
		t.Fatalf("expected a new sales officer on first composition")
	}

	// Same payload again: one more officer's count is still unseen, so
	// detection walks forward until everyone is recorded.
	events := dashboardEvents()
	for i := 0; i < 5; i++ {
		if _, err := uc.Execute(context.Background(), events); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	settled, err := uc.Execute(context.Background(), events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settled.NewSalesOfficer != "" {
		t.Fatalf("expected no new sale once all counts recorded, got %q", settled.NewSalesOfficer)
	}
}

func TestGetDashboard_SnapshotErrorPropagates(t *testing.T) {
	snapshots := &fakeSnapshotPort{
		UpsertFn: func(ctx context.Context, agg *domain.OfficerAggregate) error {
			return errors.New("db down")
		},
	}
	goals := &fakeGoalPort{goal: 120}
	uc := newDashboardUC(t, snapshots, goals)

	if _, err := uc.Execute(context.Background(), dashboardEvents()); err == nil {
		t.Fatalf("expected snapshot error to propagate")
	}
}

func TestGetDashboard_GoalErrorPropagates(t *testing.T) {
	snapshots := &fakeSnapshotPort{}
	goals := &fakeGoalPort{goalErr: errors.New("db down")}
	uc := newDashboardUC(t, snapshots, goals)

	if _, err := uc.Execute(context.Background(), dashboardEvents()); err == nil {
		t.Fatalf("expected goal error to propagate")
	}
}

// ------------------------------------------------------------
// SetGoalUseCase
// ------------------------------------------------------------

func TestSetGoal_RejectsNonPositive(t *testing.T) {
	goals := &fakeGoalPort{}
	uc := usecase.NewSetGoalUseCase(goals)

	for _, goal := range []int{0, -5} {
		err := uc.Execute(context.Background(), goal)
		if !errors.Is(err, usecase.ErrInvalidGoal) {
			t.Fatalf("expected ErrInvalidGoal for %d, got %v", goal, err)
		}
	}
	if goals.setGoal != 0 {
		t.Fatalf("repository should not be called on invalid goal")
	}
}

func TestSetGoal_StoresValidGoal(t *testing.T) {
	goals := &fakeGoalPort{}
	uc := usecase.NewSetGoalUseCase(goals)

	if err := uc.Execute(context.Background(), 140); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goals.setGoal != 140 {
		t.Fatalf("expected goal 140 stored, got %d", goals.setGoal)
	}
}
