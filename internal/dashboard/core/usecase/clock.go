package usecase

import (
	"log/slog"
	"time"

	"sales-dashboard-service/internal/observability"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

// DefaultTimezone is the civil timezone every aggregation window is
// anchored to.
const DefaultTimezone = "America/Los_Angeles"

// Clock bundles the reference time and civil timezone the aggregators
// bucket against. Tests pin Now to a fixed instant.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	return Clock{Loc: loc, Now: time.Now}
}

func (c Clock) currentMonth() (int, time.Month) {
	now := c.Now().In(c.Loc)
	return now.Year(), now.Month()
}

func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// normalize parses one raw event, logging and counting malformed entries.
// A bad event never aborts the batch; it just contributes nothing.
func normalize(raw webhookdomain.RawEvent, loc *time.Location, section string) (webhookdomain.SaleEvent, bool) {
	ev, err := raw.Normalize(loc)
	if err != nil {
		observability.EventsSkipped.WithLabelValues(section).Inc()
		slog.Error("skipping malformed webhook event", "section", section, "err", err)
		return webhookdomain.SaleEvent{}, false
	}
	return ev, true
}
