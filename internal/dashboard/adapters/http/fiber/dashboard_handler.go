package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"sales-dashboard-service/internal/dashboard/core/usecase"
	webhookdomain "sales-dashboard-service/internal/webhook/core/domain"

	"github.com/gofiber/fiber/v2"
)

type DashboardComposer interface {
	Execute(ctx context.Context, events []webhookdomain.RawEvent) (*usecase.DashboardData, error)
}

type GoalSetter interface {
	Execute(ctx context.Context, goal int) error
}

type DashboardHandler struct {
	fetcher  WebhookFetcher
	composer DashboardComposer
	setGoal  GoalSetter
}

func NewDashboardHandler(fetcher WebhookFetcher, composer DashboardComposer, setGoal GoalSetter) *DashboardHandler {
	return &DashboardHandler{fetcher: fetcher, composer: composer, setGoal: setGoal}
}

// GetDashboardData godoc
// @Summary Composed dashboard payload
// @Description Aggregates current-month sales, persists the snapshot, and returns the dashboard view
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardDataResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboard-data [get]
func (h *DashboardHandler) GetDashboardData(c *fiber.Ctx) error {
	events, err := h.fetcher.Execute(c.UserContext())
	if err != nil {
		return unavailable(c)
	}

	data, err := h.composer.Execute(c.UserContext(), events)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := DashboardDataResponse{
		NewEnrollments: officerItems(data.NewEnrollments),
		MonthlyRevenue: officerItems(data.MonthlyRevenue),
		UpcomingDemos:  data.UpcomingDemos,
		MonthlyGoal:    data.MonthlyGoal,
	}
	if data.NewSalesOfficer != "" {
		resp.NewSalesOfficer = &data.NewSalesOfficer
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// SetMonthlyGoal godoc
// @Summary Update the monthly enrollment goal
// @Description Stores a new monthly goal; the latest stored goal wins
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body SetMonthlyGoalRequest true "Goal payload"
// @Success 200 {object} SetMonthlyGoalResponse
// @Failure 400 {object} SetMonthlyGoalResponse
// @Failure 500 {object} SetMonthlyGoalResponse
// @Router /api/set-monthly-goal [post]
func (h *DashboardHandler) SetMonthlyGoal(c *fiber.Ctx) error {
	var req SetMonthlyGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(SetMonthlyGoalResponse{
			Success: false,
			Message: "Invalid goal value provided",
		})
	}

	if err := h.setGoal.Execute(c.UserContext(), req.Goal); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidGoal):
			return c.Status(http.StatusBadRequest).JSON(SetMonthlyGoalResponse{
				Success: false,
				Message: "Goal must be greater than 0",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(SetMonthlyGoalResponse{
				Success: false,
				Message: "Error updating monthly goal",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(SetMonthlyGoalResponse{
		Success: true,
		Message: fmt.Sprintf("Monthly goal updated to %d enrollments", req.Goal),
	})
}
