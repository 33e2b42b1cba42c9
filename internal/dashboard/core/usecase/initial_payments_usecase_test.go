package usecase_test

import (
	"testing"

	"sales-dashboard-service/internal/dashboard/core/usecase"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"
)

func TestInitialPayments_DuplicateCaseCountedOnce(t *testing.T) {
	uc := usecase.NewInitialPaymentsUseCase(testClock(t, fixedNow))

	inMonth := fixedNow.AddDate(0, 0, -2)
	events := []webhookdomain.RawEvent{
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "CaseID": "27594", "InitialPayment": "yes"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "CaseID": "27594", "InitialPayment": "yes"}),
	}

	out := uc.Execute(events)

	ledger := out["A"]
	if ledger == nil {
		t.Fatalf("expected ledger for A, got %v", out)
	}
	if ledger.Count != 1 {
		t.Fatalf("expected deduplicated count 1, got %d", ledger.Count)
	}
	if len(ledger.Cases) != 1 {
		t.Fatalf("expected 1 tracked case, got %d", len(ledger.Cases))
	}
}

func TestInitialPayments_DistinctCasesCounted(t *testing.T) {
	uc := usecase.NewInitialPaymentsUseCase(testClock(t, fixedNow))

	inMonth := fixedNow.AddDate(0, 0, -2)
	events := []webhookdomain.RawEvent{
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "CaseID": "1", "InitialPayment": "yes"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "CaseID": "2", "InitialPayment": "yes"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "B", "CaseID": "1", "InitialPayment": "yes"}),
	}

	out := uc.Execute(events)

	if out["A"].Count != 2 {
		t.Fatalf("expected A=2, got %d", out["A"].Count)
	}
	// Case IDs dedupe per officer, not globally.
	if out["B"].Count != 1 {
		t.Fatalf("expected B=1, got %d", out["B"].Count)
	}
}

func TestInitialPayments_SkipsIncompleteAndUnflaggedEvents(t *testing.T) {
	uc := usecase.NewInitialPaymentsUseCase(testClock(t, fixedNow))

	inMonth := fixedNow.AddDate(0, 0, -2)
	lastMonth := fixedNow.AddDate(0, -1, 0)

	events := []webhookdomain.RawEvent{
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "CaseID": "1"}),                            // not flagged
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "InitialPayment": "yes"}),                  // missing case
		saleAt(inMonth, map[string]string{"CaseID": "1", "InitialPayment": "yes"}),                          // missing officer
		saleAt(lastMonth, map[string]string{"SetOfficerName": "A", "CaseID": "9", "InitialPayment": "yes"}), // out of month
		malformedEvent(),
	}

	out := uc.Execute(events)

	if len(out) != 0 {
		t.Fatalf("expected empty ledger, got %v", out)
	}
}

func TestPaymentLedger_SortedCases(t *testing.T) {
	uc := usecase.NewInitialPaymentsUseCase(testClock(t, fixedNow))

	inMonth := fixedNow.AddDate(0, 0, -2)
	events := []webhookdomain.RawEvent{
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "CaseID": "300", "InitialPayment": "yes"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "CaseID": "100", "InitialPayment": "yes"}),
		saleAt(inMonth, map[string]string{"SetOfficerName": "A", "CaseID": "200", "InitialPayment": "yes"}),
	}

	out := uc.Execute(events)

	cases := out["A"].SortedCases()
	if len(cases) != 3 || cases[0] != "100" || cases[1] != "200" || cases[2] != "300" {
		t.Fatalf("expected ordered case list, got %v", cases)
	}
}
