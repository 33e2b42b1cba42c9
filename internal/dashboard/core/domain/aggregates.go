package domain

import "sort"

const DefaultMonthlyGoal = 120

// OfficerAggregate accumulates one officer's revenue and demo count over a
// single aggregation pass. Keyed by name; persistence is an adapter concern.
type OfficerAggregate struct {
	Name  string
	Value float64
	Demos int
}

// DailyBucket is a pre-seeded calendar-day counter. Only seeded keys ever
// receive counts; Date is the shifted key, not the event's own local date.
type DailyBucket struct {
	Date  string
	Count int
}

// PaymentLedger deduplicates one officer's initial payments by case ID.
// Count always equals the number of distinct case IDs seen.
type PaymentLedger struct {
	Count int
	Cases map[string]struct{}
}

// SortedCases returns the case IDs as an ordered slice for serialization.
func (l *PaymentLedger) SortedCases() []string {
	cases := make([]string, 0, len(l.Cases))
	for id := range l.Cases {
		cases = append(cases, id)
	}
	sort.Strings(cases)
	return cases
}

type OpenerCount struct {
	Name  string
	Count int
}
