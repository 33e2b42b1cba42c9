package fiber

import (
	"context"
	"net/http"

	"sales-dashboard-service/internal/dashboard/core/domain"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"

	"github.com/gofiber/fiber/v2"
)

type WebhookFetcher interface {
	Execute(ctx context.Context) ([]webhookdomain.RawEvent, error)
}

type DailyEnrollmentsAggregator interface {
	Execute(events []webhookdomain.RawEvent) []domain.DailyBucket
}

type LeadSourceAggregator interface {
	Execute(events []webhookdomain.RawEvent) map[string]int
}

type MonthlyRevenueAggregator interface {
	AggregateByDemos(events []webhookdomain.RawEvent) []domain.OfficerAggregate
	AggregateByInitialPayments(events []webhookdomain.RawEvent) []domain.OfficerAggregate
}

type InitialPaymentsAggregator interface {
	Execute(events []webhookdomain.RawEvent) map[string]*domain.PaymentLedger
}

type OpenerAggregator interface {
	Execute(events []webhookdomain.RawEvent) []domain.OpenerCount
}

type ReportsHandler struct {
	fetcher     WebhookFetcher
	daily       DailyEnrollmentsAggregator
	leadSources LeadSourceAggregator
	revenue     MonthlyRevenueAggregator
	payments    InitialPaymentsAggregator
	openers     OpenerAggregator
}

func NewReportsHandler(
	fetcher WebhookFetcher,
	daily DailyEnrollmentsAggregator,
	leadSources LeadSourceAggregator,
	revenue MonthlyRevenueAggregator,
	payments InitialPaymentsAggregator,
	openers OpenerAggregator,
) *ReportsHandler {
	return &ReportsHandler{
		fetcher:     fetcher,
		daily:       daily,
		leadSources: leadSources,
		revenue:     revenue,
		payments:    payments,
		openers:     openers,
	}
}

// fetch failure with no cached payload is a service-level condition, not a
// handler bug, so every report answers it with 503.
func unavailable(c *fiber.Ctx) error {
	return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
		Error:   "webhook_unavailable",
		Message: "Failed to fetch data",
	})
}

// DailyEnrollments godoc
// @Summary Daily enrollment counts
// @Description Returns up to 10 weekday buckets of lead-sale counts, newest first
// @Tags Reports
// @Produce json
// @Success 200 {array} DailyEnrollmentItem
// @Failure 503 {object} ErrorResponse
// @Router /api/daily-enrollments [get]
func (h *ReportsHandler) DailyEnrollments(c *fiber.Ctx) error {
	events, err := h.fetcher.Execute(c.UserContext())
	if err != nil {
		return unavailable(c)
	}

	buckets := h.daily.Execute(events)

	resp := make([]DailyEnrollmentItem, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, DailyEnrollmentItem{Date: b.Date, Count: b.Count})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// LeadSources godoc
// @Summary Lead-source sale counts
// @Description Returns current-month lead-sale counts keyed by lead source
// @Tags Reports
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 503 {object} ErrorResponse
// @Router /api/leadsource-data [get]
func (h *ReportsHandler) LeadSources(c *fiber.Ctx) error {
	events, err := h.fetcher.Execute(c.UserContext())
	if err != nil {
		return unavailable(c)
	}

	return c.Status(http.StatusOK).JSON(h.leadSources.Execute(events))
}

// AdminMonthlyRevenue godoc
// @Summary Monthly revenue per officer
// @Description Returns current-month revenue and demo counts per officer
// @Tags Reports
// @Produce json
// @Success 200 {array} OfficerSalesItem
// @Failure 503 {object} ErrorResponse
// @Router /api/admin-monthly-revenue [get]
func (h *ReportsHandler) AdminMonthlyRevenue(c *fiber.Ctx) error {
	events, err := h.fetcher.Execute(c.UserContext())
	if err != nil {
		return unavailable(c)
	}

	return c.Status(http.StatusOK).JSON(officerItems(h.revenue.AggregateByDemos(events)))
}

// MonthlyRevenueData godoc
// @Summary Monthly revenue with deduplicated enrollments
// @Description Returns current-month revenue per officer with demos taken from the initial-payment ledger
// @Tags Reports
// @Produce json
// @Success 200 {array} OfficerSalesItem
// @Failure 503 {object} ErrorResponse
// @Router /api/monthly-revenue-data [get]
func (h *ReportsHandler) MonthlyRevenueData(c *fiber.Ctx) error {
	events, err := h.fetcher.Execute(c.UserContext())
	if err != nil {
		return unavailable(c)
	}

	return c.Status(http.StatusOK).JSON(officerItems(h.revenue.AggregateByInitialPayments(events)))
}

// EnrollmentsPerOpener godoc
// @Summary Enrollments per opener
// @Description Returns current-month lead-sale counts per opener, descending
// @Tags Reports
// @Produce json
// @Success 200 {array} OpenerPair
// @Failure 503 {object} ErrorResponse
// @Router /api/enrollments-per-opener [get]
func (h *ReportsHandler) EnrollmentsPerOpener(c *fiber.Ctx) error {
	events, err := h.fetcher.Execute(c.UserContext())
	if err != nil {
		return unavailable(c)
	}

	openers := h.openers.Execute(events)

	resp := make([]OpenerPair, 0, len(openers))
	for _, o := range openers {
		resp = append(resp, OpenerPair{Name: o.Name, Count: o.Count})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// InitialPayments godoc
// @Summary Deduplicated initial payments per officer
// @Description Returns current-month initial payment counts and case IDs per officer
// @Tags Reports
// @Produce json
// @Success 200 {object} map[string]InitialPaymentsEntry
// @Failure 503 {object} ErrorResponse
// @Router /api/initial-payments [get]
func (h *ReportsHandler) InitialPayments(c *fiber.Ctx) error {
	events, err := h.fetcher.Execute(c.UserContext())
	if err != nil {
		return unavailable(c)
	}

	ledgers := h.payments.Execute(events)

	// Case sets must become ordered lists before serialization.
	resp := make(map[string]InitialPaymentsEntry, len(ledgers))
	for name, ledger := range ledgers {
		resp[name] = InitialPaymentsEntry{
			Count: ledger.Count,
			Cases: ledger.SortedCases(),
		}
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func officerItems(aggs []domain.OfficerAggregate) []OfficerSalesItem {
	items := make([]OfficerSalesItem, 0, len(aggs))
	for _, a := range aggs {
		items = append(items, OfficerSalesItem{Name: a.Name, Value: a.Value, Demos: a.Demos})
	}
	return items
}
