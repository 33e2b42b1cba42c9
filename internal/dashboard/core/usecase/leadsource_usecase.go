package usecase

import (
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

type LeadSourceUseCase struct {
	clock Clock
}

func NewLeadSourceUseCase(clock Clock) *LeadSourceUseCase {
	return &LeadSourceUseCase{clock: clock}
}

// Execute counts current-month lead sales per lead source. Events outside
// the month or missing a source contribute nothing.
func (uc *LeadSourceUseCase) Execute(events []webhookdomain.RawEvent) map[string]int {
	year, month := uc.clock.currentMonth()
	counts := make(map[string]int)

	for _, raw := range events {
		ev, ok := normalize(raw, uc.clock.Loc, "lead_sources")
		if !ok {
			continue
		}
		if !inMonth(ev.Timestamp, year, month) {
			continue
		}
		if ev.LeadSale && ev.LeadSource != "" {
			counts[ev.LeadSource]++
		}
	}

	return counts
}
