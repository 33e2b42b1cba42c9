package usecase_test

import (
	"testing"
	"time"

	"sales-dashboard-service/internal/dashboard/core/usecase"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

// fixedNow is a Wednesday, mid-March 2025, noon Pacific.
var fixedNow = time.Date(2025, 3, 19, 12, 0, 0, 0, mustPacific())

func mustPacific() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
	return loc
}

func testClock(t *testing.T, now time.Time) usecase.Clock {
	t.Helper()
	return usecase.Clock{
		Loc: mustPacific(),
		Now: func() time.Time { return now },
	}
}

// saleAt builds a raw event stamped at the given time with the given data.
func saleAt(at time.Time, data map[string]string) webhookdomain.RawEvent {
	return webhookdomain.RawEvent{
		Timestamp: at.Format("2006-01-02T15:04:05.000000-07:00"),
		Data:      data,
	}
}

func malformedEvent() webhookdomain.RawEvent {
	return webhookdomain.RawEvent{
		Timestamp: "yesterday at noon",
		Data:      map[string]string{"Leadsales": "yes", "Leadsource": "FB", "OpenerName": "X"},
	}
}
