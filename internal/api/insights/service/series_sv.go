package insightsService

import (
	"context"
	"time"

	"ExpenseTracker/internal/api/insights"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/sirupsen/logrus"
)

const DefaultSeriesMonths = 6

func emptySeries() insights.MonthlySeriesResponse {
	return insights.MonthlySeriesResponse{
		Months: []entity.ExpenseSummary{},
	}
}

// MonthlySeries computes per-month totals for the last N calendar months
// ending with the month of now. Months without spending still appear in
// the series with a zero amount.
func (s *insightsService) MonthlySeries(ctx context.Context, userID string, months int, now time.Time) <-chan Outcome[insights.MonthlySeriesResponse] {
	return dispatch(func() (insights.MonthlySeriesResponse, error) {
		requestID := contextPkg.GetRequestID(ctx)

		if months <= 0 {
			months = DefaultSeriesMonths
		}

		repo, err := s.expenseRepository.NewClient(false)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create new client")
			return emptySeries(), err
		}

		firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

		seriesStart, _ := s.utils.MonthBounds(firstMonth)
		_, seriesEnd := s.utils.MonthBounds(now)

		expenses, err := repo.Expenses.ListByDateRange(ctx, userID, seriesStart, seriesEnd)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to list expenses for monthly series")
			return emptySeries(), err
		}

		observed := monthSummaries(expenses)
		byLabel := make(map[string]entity.ExpenseSummary, len(observed))
		for i := range observed {
			byLabel[observed[i].Label] = observed[i]
		}

		total := sumAmounts(expenses)

		items := make([]entity.ExpenseSummary, 0, months)
		for i := 0; i < months; i++ {
			month := firstMonth.AddDate(0, i, 0)
			label := s.utils.MonthLabel(month)

			if item, ok := byLabel[label]; ok {
				items = append(items, item)
				continue
			}

			items = append(items, entity.ExpenseSummary{
				Label: label,
				Color: monthSummaryColor,
			})
		}

		return insights.MonthlySeriesResponse{
			Months: items,
			Total:  total,
		}, nil
	}, emptySeries(), s.setLastError)
}
