package usecase

import (
	"log/slog"

	"sales-dashboard-service/internal/dashboard/core/domain"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

type MonthlyRevenueUseCase struct {
	clock Clock
	dedup *InitialPaymentsUseCase
}

func NewMonthlyRevenueUseCase(clock Clock, dedup *InitialPaymentsUseCase) *MonthlyRevenueUseCase {
	return &MonthlyRevenueUseCase{clock: clock, dedup: dedup}
}

// AggregateByDemos accumulates current-month revenue per officer and counts
// a demo for every lead sale. Order of the returned slice is unspecified;
// display sorting is the consumer's concern.
func (uc *MonthlyRevenueUseCase) AggregateByDemos(events []webhookdomain.RawEvent) []domain.OfficerAggregate {
	sales := uc.accumulate(events, true)

	out := make([]domain.OfficerAggregate, 0, len(sales))
	for _, agg := range sales {
		out = append(out, *agg)
	}
	return out
}

// AggregateByInitialPayments accumulates the same revenue, but the demo
// count is overwritten with the deduplicated initial-payment count for the
// officer. Officers absent from the ledger keep zero demos.
func (uc *MonthlyRevenueUseCase) AggregateByInitialPayments(events []webhookdomain.RawEvent) []domain.OfficerAggregate {
	sales := uc.accumulate(events, false)
	ledgers := uc.dedup.Execute(events)

	out := make([]domain.OfficerAggregate, 0, len(sales))
	for name, agg := range sales {
		if ledger, ok := ledgers[name]; ok {
			agg.Demos = ledger.Count
		}
		out = append(out, *agg)
	}
	return out
}

func (uc *MonthlyRevenueUseCase) accumulate(events []webhookdomain.RawEvent, countDemos bool) map[string]*domain.OfficerAggregate {
	year, month := uc.clock.currentMonth()
	sales := make(map[string]*domain.OfficerAggregate)

	for _, raw := range events {
		ev, ok := normalize(raw, uc.clock.Loc, "monthly_revenue")
		if !ok {
			continue
		}
		if !inMonth(ev.Timestamp, year, month) {
			continue
		}

		// Officers are created lazily on first sight, including the
		// empty-name officer for events without SetOfficerName.
		agg := sales[ev.OfficerName]
		if agg == nil {
			agg = &domain.OfficerAggregate{Name: ev.OfficerName}
			sales[ev.OfficerName] = agg
		}

		if countDemos && ev.LeadSale {
			agg.Demos++
		}

		if ev.RawAmount != "" {
			if ev.PaymentValid {
				agg.Value += ev.PaymentAmount
			} else {
				slog.Warn("invalid payment amount", "amount", ev.RawAmount, "officer", ev.OfficerName)
			}
		}
	}

	return sales
}
