package fiber

import "encoding/json"

type DailyEnrollmentItem struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type OfficerSalesItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Demos int     `json:"demos"`
}

type InitialPaymentsEntry struct {
	Count int      `json:"count"`
	Cases []string `json:"cases"`
}

// OpenerPair serializes as the legacy two-element array ["name", count];
// the dashboard frontend consumes tuples, not objects.
type OpenerPair struct {
	Name  string
	Count int
}

func (p OpenerPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Name, p.Count})
}

type DashboardDataResponse struct {
	NewEnrollments  []OfficerSalesItem `json:"new_enrollments"`
	MonthlyRevenue  []OfficerSalesItem `json:"monthly_revenue"`
	UpcomingDemos   int                `json:"upcoming_demos"`
	MonthlyGoal     int                `json:"monthly_goal"`
	NewSalesOfficer *string            `json:"new_sales_officer"`
}

// SetMonthlyGoalRequest represents the goal update payload
// @Description Monthly goal update DTO
type SetMonthlyGoalRequest struct {
	Goal int `json:"goal"`
}

type SetMonthlyGoalResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"webhook_unavailable"`
	Message string `json:"message" example:"Failed to fetch data"`
}
