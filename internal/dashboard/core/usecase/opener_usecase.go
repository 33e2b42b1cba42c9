package usecase

import (
	"sort"

	"sales-dashboard-service/internal/dashboard/core/domain"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

type OpenerUseCase struct {
	clock Clock
}

func NewOpenerUseCase(clock Clock) *OpenerUseCase {
	return &OpenerUseCase{clock: clock}
}

// Execute counts current-month lead sales per opener and returns them in
// non-increasing count order. Ties keep first-seen order.
func (uc *OpenerUseCase) Execute(events []webhookdomain.RawEvent) []domain.OpenerCount {
	year, month := uc.clock.currentMonth()

	counts := make(map[string]int)
	var order []string

	for _, raw := range events {
		ev, ok := normalize(raw, uc.clock.Loc, "opener_enrollments")
		if !ok {
			continue
		}
		if !inMonth(ev.Timestamp, year, month) {
			continue
		}
		if !ev.LeadSale || ev.OpenerName == "" {
			continue
		}

		if _, seen := counts[ev.OpenerName]; !seen {
			order = append(order, ev.OpenerName)
		}
		counts[ev.OpenerName]++
	}

	out := make([]domain.OpenerCount, 0, len(order))
	for _, name := range order {
		out = append(out, domain.OpenerCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
