package insightsService

import (
	"context"

	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/api/insights"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/sirupsen/logrus"
)

func emptyInsights() insights.InsightsResponse {
	return insights.InsightsResponse{
		Categories: []entity.ExpenseSummary{},
		Locations:  []entity.ExpenseSummary{},
		Months:     []entity.ExpenseSummary{},
	}
}

// Insights aggregates the expenses matched by the filter: per-category,
// per-location and per-month breakdowns, the single largest expense, the
// most expensive category, and the average daily spend over the filtered
// range. A start date after the end date simply matches nothing.
func (s *insightsService) Insights(ctx context.Context, userID string, filter expense.ListFilter) <-chan Outcome[insights.InsightsResponse] {
	return dispatch(func() (insights.InsightsResponse, error) {
		requestID := contextPkg.GetRequestID(ctx)

		repo, err := s.expenseRepository.NewClient(false)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create new client")
			return emptyInsights(), err
		}

		expenses, err := s.listFiltered(ctx, repo, userID, filter)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to list expenses for insights")
			return emptyInsights(), err
		}

		categoryList, err := repo.Categories.ListForUser(ctx, userID)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to list categories for insights")
			return emptyInsights(), err
		}

		categories := make(map[string]entity.Category, len(categoryList))
		for i := range categoryList {
			categories[categoryList[i].ID] = categoryList[i]
		}

		total := sumAmounts(expenses)

		response := insights.InsightsResponse{
			Total:             total,
			Categories:        categorySummaries(expenses, categories),
			Locations:         locationSummaries(expenses, total),
			Months:            monthSummaries(expenses),
			TopCategory:       topCategory(expenses, categories),
			AverageDailySpend: s.averageDailySpend(ctx, total, expenses, filter),
		}

		if max, ok := maxExpense(expenses); ok {
			maxResponse := makeExpenseResponse(max)
			response.MaxExpense = &maxResponse
		}

		return response, nil
	}, emptyInsights(), s.setLastError)
}

func (s *insightsService) listFiltered(ctx context.Context, repo repoClient, userID string, filter expense.ListFilter) ([]entity.Expense, error) {
	hasRange := filter.StartDate != "" && filter.EndDate != ""

	switch {
	case filter.CategoryID != "" && hasRange:
		return repo.Expenses.ListByCategoryAndDateRange(ctx, userID, filter.CategoryID, filter.StartDate, filter.EndDate)
	case filter.CategoryID != "":
		return repo.Expenses.ListByCategory(ctx, userID, filter.CategoryID)
	case hasRange:
		return repo.Expenses.ListByDateRange(ctx, userID, filter.StartDate, filter.EndDate)
	case filter.Location != "":
		return repo.Expenses.ListByLocation(ctx, userID, filter.Location)
	default:
		return repo.Expenses.ListByUser(ctx, userID)
	}
}

// averageDailySpend uses the explicit range when the filter has one;
// otherwise the observed span of the matched expenses. An unparseable
// bound degrades the stat to zero and lands in the error side channel.
func (s *insightsService) averageDailySpend(ctx context.Context, total float64, expenses []entity.Expense, filter expense.ListFilter) float64 {
	startDate, endDate := filter.StartDate, filter.EndDate

	if startDate == "" || endDate == "" {
		if len(expenses) == 0 {
			return 0
		}

		startDate, endDate = expenses[0].Date, expenses[0].Date
		for i := 1; i < len(expenses); i++ {
			if expenses[i].Date < startDate {
				startDate = expenses[i].Date
			}
			if expenses[i].Date > endDate {
				endDate = expenses[i].Date
			}
		}
	}

	days, err := s.utils.InclusiveDayCount(startDate, endDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to parse date bounds for average daily spend")
		s.setLastError(err)
		return 0
	}

	return averageDaily(total, days)
}
