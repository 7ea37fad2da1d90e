package insights

import (
	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/entity"
)

type DashboardResponse struct {
	TotalAll   float64                   `json:"total_all"`
	TotalMonth float64                   `json:"total_month"`
	TotalWeek  float64                   `json:"total_week"`
	Recent     []expense.ExpenseResponse `json:"recent"`
	Categories []entity.ExpenseSummary   `json:"categories"`
}

type InsightsResponse struct {
	Total             float64                  `json:"total"`
	Categories        []entity.ExpenseSummary  `json:"categories"`
	Locations         []entity.ExpenseSummary  `json:"locations"`
	Months            []entity.ExpenseSummary  `json:"months"`
	MaxExpense        *expense.ExpenseResponse `json:"max_expense,omitempty"`
	TopCategory       string                   `json:"top_category"`
	AverageDailySpend float64                  `json:"average_daily_spend"`
}

type MonthlySeriesResponse struct {
	Months []entity.ExpenseSummary `json:"months"`
	Total  float64                 `json:"total"`
}

type MonthlySeriesFilter struct {
	Months int `query:"months" validate:"omitempty,min=1,max=24"`
}
