package usecase

import (
	"sales-dashboard-service/internal/dashboard/core/domain"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

type InitialPaymentsUseCase struct {
	clock Clock
}

func NewInitialPaymentsUseCase(clock Clock) *InitialPaymentsUseCase {
	return &InitialPaymentsUseCase{clock: clock}
}

// Execute builds a per-officer deduplicating ledger of current-month
// initial payments. A case ID seen before for the same officer is ignored,
// so the count equals the number of distinct cases, never the event count.
func (uc *InitialPaymentsUseCase) Execute(events []webhookdomain.RawEvent) map[string]*domain.PaymentLedger {
	year, month := uc.clock.currentMonth()
	payments := make(map[string]*domain.PaymentLedger)

	for _, raw := range events {
		ev, ok := normalize(raw, uc.clock.Loc, "initial_payments")
		if !ok {
			continue
		}
		if !ev.InitialPayment {
			continue
		}
		if !inMonth(ev.Timestamp, year, month) {
			continue
		}
		if ev.OfficerName == "" || ev.CaseID == "" {
			continue
		}

		ledger := payments[ev.OfficerName]
		if ledger == nil {
			ledger = &domain.PaymentLedger{Cases: make(map[string]struct{})}
			payments[ev.OfficerName] = ledger
		}

		if _, seen := ledger.Cases[ev.CaseID]; seen {
			continue
		}
		ledger.Cases[ev.CaseID] = struct{}{}
		ledger.Count++
	}

	return payments
}
