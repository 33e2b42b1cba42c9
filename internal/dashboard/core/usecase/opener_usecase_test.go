package usecase_test

import (
	"testing"

	"sales-dashboard-service/internal/dashboard/core/usecase"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

func TestOpeners_DescendingByCount(t *testing.T) {
	uc := usecase.NewOpenerUseCase(testClock(t, fixedNow))

	inMonth := fixedNow.AddDate(0, 0, -2)
	events := []webhookdomain.RawEvent{
		saleAt(inMonth, map[string]string{"OpenerName": "Y", "Leadsales": "yes"}),
		saleAt(inMonth, map[string]string{"OpenerName": "X", "Leadsales": "yes"}),
		saleAt(inMonth, map[string]string{"OpenerName": "X", "Leadsales": "yes"}),
		saleAt(inMonth, map[string]string{"OpenerName": "X", "Leadsales": "yes"}),
	}

	out := uc.Execute(events)

	if len(out) != 2 {
		t.Fatalf("expected 2 openers, got %d", len(out))
	}
	if out[0].Name != "X" || out[0].Count != 3 {
		t.Fatalf("expected X=3 first, got %+v", out[0])
	}
	if out[1].Name != "Y" || out[1].Count != 1 {
		t.Fatalf("expected Y=1 second, got %+v", out[1])
	}
}

func TestOpeners_TiesKeepFirstSeenOrder(t *testing.T) {
	uc := usecase.NewOpenerUseCase(testClock(t, fixedNow))

	inMonth := fixedNow.AddDate(0, 0, -2)
	events := []webhookdomain.RawEvent{
		saleAt(inMonth, map[string]string{"OpenerName": "B", "Leadsales": "yes"}),
		saleAt(inMonth, map[string]string{"OpenerName": "A", "Leadsales": "yes"}),
	}

	out := uc.Execute(events)

	if out[0].Name != "B" || out[1].Name != "A" {
		t.Fatalf("expected first-seen order on tie, got %v", out)
	}
}

func TestOpeners_SkipsNonSalesMissingNamesAndOtherMonths(t *testing.T) {
	uc := usecase.NewOpenerUseCase(testClock(t, fixedNow))

	inMonth := fixedNow.AddDate(0, 0, -2)
	lastMonth := fixedNow.AddDate(0, -1, 0)

	events := []webhookdomain.RawEvent{
		saleAt(inMonth, map[string]string{"OpenerName": "X"}),                      // not a sale
		saleAt(inMonth, map[string]string{"Leadsales": "yes"}),                     // no opener
		saleAt(lastMonth, map[string]string{"OpenerName": "X", "Leadsales": "yes"}), // wrong month
		malformedEvent(),
		saleAt(inMonth, map[string]string{"OpenerName": "X", "Leadsales": "yes"}),
	}

	out := uc.Execute(events)

	if len(out) != 1 || out[0].Name != "X" || out[0].Count != 1 {
		t.Fatalf("expected only X=1, got %v", out)
	}
}
