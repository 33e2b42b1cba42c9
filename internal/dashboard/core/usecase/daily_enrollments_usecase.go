package usecase

import (
	"sort"
	"time"

	"sales-dashboard-service/internal/dashboard/core/domain"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

const (
	// dailyScanDays is how far back bucket seeding walks from today.
	dailyScanDays = 14
	// dailyMaxBuckets caps both seeding and the returned slice.
	dailyMaxBuckets = 10
)

type DailyEnrollmentsUseCase struct {
	clock Clock
}

func NewDailyEnrollmentsUseCase(clock Clock) *DailyEnrollmentsUseCase {
	return &DailyEnrollmentsUseCase{clock: clock}
}

// shiftedDateKey maps a local date to its bucket key: the date plus one
// calendar day. The shift matches how the upstream reports enrollment days;
// downstream displays key off the shifted date, so it must not be "fixed".
func shiftedDateKey(t time.Time) string {
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}

// Execute seeds weekday buckets for the last dailyScanDays local days and
// counts lead sales into them. Events whose shifted key was never seeded
// are silently ignored.
func (uc *DailyEnrollmentsUseCase) Execute(events []webhookdomain.RawEvent) []domain.DailyBucket {
	today := uc.clock.Now().In(uc.clock.Loc)

	buckets := make(map[string]int)
	for i := 0; i < dailyScanDays; i++ {
		day := today.AddDate(0, 0, -i)
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			buckets[shiftedDateKey(day)] = 0
		}
		if len(buckets) == dailyMaxBuckets {
			break
		}
	}

	for _, raw := range events {
		ev, ok := normalize(raw, uc.clock.Loc, "daily_enrollments")
		if !ok {
			continue
		}

		key := shiftedDateKey(ev.Timestamp)
		if _, seeded := buckets[key]; seeded && ev.LeadSale {
			buckets[key]++
		}
	}

	out := make([]domain.DailyBucket, 0, len(buckets))
	for date, count := range buckets {
		out = append(out, domain.DailyBucket{Date: date, Count: count})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > dailyMaxBuckets {
		out = out[:dailyMaxBuckets]
	}
	return out
}
