package insightsService

import (
	"context"
	"time"

	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/api/insights"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/sirupsen/logrus"
)

const recentExpenseCount = 5

func makeExpenseResponse(exp entity.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:         exp.ID,
		UserID:     exp.UserID,
		Title:      exp.Title,
		Amount:     exp.Amount,
		Date:       exp.Date,
		Time:       exp.Time,
		Location:   exp.Location,
		CategoryID: exp.CategoryID,
		Notes:      exp.Notes,
		CreatedAt:  exp.CreatedAt.Format(time.RFC3339),
	}
}

func emptyDashboard() insights.DashboardResponse {
	return insights.DashboardResponse{
		Recent:     []expense.ExpenseResponse{},
		Categories: []entity.ExpenseSummary{},
	}
}

// Dashboard computes the all-time, current-month and current-week totals,
// the most recent expenses, and the all-time category breakdown.
func (s *insightsService) Dashboard(ctx context.Context, userID string, now time.Time) <-chan Outcome[insights.DashboardResponse] {
	return dispatch(func() (insights.DashboardResponse, error) {
		requestID := contextPkg.GetRequestID(ctx)

		repo, err := s.expenseRepository.NewClient(false)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create new client")
			return emptyDashboard(), err
		}

		totalAll, err := repo.Expenses.SumByUser(ctx, userID)
		if err != nil {
			return emptyDashboard(), err
		}

		monthStart, monthEnd := s.utils.MonthBounds(now)
		totalMonth, err := repo.Expenses.SumByDateRange(ctx, userID, monthStart, monthEnd)
		if err != nil {
			return emptyDashboard(), err
		}

		weekStart, weekEnd := s.utils.WeekBounds(now)
		totalWeek, err := repo.Expenses.SumByDateRange(ctx, userID, weekStart, weekEnd)
		if err != nil {
			return emptyDashboard(), err
		}

		recent, err := repo.Expenses.ListRecent(ctx, userID, recentExpenseCount)
		if err != nil {
			return emptyDashboard(), err
		}

		recentResponses := make([]expense.ExpenseResponse, 0, len(recent))
		for i := range recent {
			recentResponses = append(recentResponses, makeExpenseResponse(recent[i]))
		}

		all, err := repo.Expenses.ListByUser(ctx, userID)
		if err != nil {
			return emptyDashboard(), err
		}

		categories, err := repo.Categories.ListForUser(ctx, userID)
		if err != nil {
			return emptyDashboard(), err
		}

		byID := make(map[string]entity.Category, len(categories))
		for i := range categories {
			byID[categories[i].ID] = categories[i]
		}

		return insights.DashboardResponse{
			TotalAll:   totalAll,
			TotalMonth: totalMonth,
			TotalWeek:  totalWeek,
			Recent:     recentResponses,
			Categories: categorySummaries(all, byID),
		}, nil
	}, emptyDashboard(), s.setLastError)
}
