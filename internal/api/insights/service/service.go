package insightsService

import (
	"context"
	"sync"
	"time"

	"ExpenseTracker/internal/api/expense"
	expenseRepository "ExpenseTracker/internal/api/expense/repository"
	"ExpenseTracker/internal/api/insights"
	"ExpenseTracker/pkg/utils"

	"github.com/sirupsen/logrus"
)

// IInsightsService is the aggregation engine. Every operation is
// dispatched to a background goroutine and fulfilled exactly once on the
// returned channel. The engine never fails a caller: when the data layer
// errors, the outcome carries a zero-valued result and a diagnostic, and
// the error is retained for LastError.
type IInsightsService interface {
	Dashboard(ctx context.Context, userID string, now time.Time) <-chan Outcome[insights.DashboardResponse]
	Insights(ctx context.Context, userID string, filter expense.ListFilter) <-chan Outcome[insights.InsightsResponse]
	MonthlySeries(ctx context.Context, userID string, months int, now time.Time) <-chan Outcome[insights.MonthlySeriesResponse]
	LastError() error
}

type repoClient = expenseRepository.Client

type insightsService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
	utils             utils.IUtils

	mu      sync.Mutex
	lastErr error
}

func New(log *logrus.Logger, er expenseRepository.Repository, utils utils.IUtils) IInsightsService {
	return &insightsService{
		log:               log,
		expenseRepository: er,
		utils:             utils,
	}
}

func (s *insightsService) setLastError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

// LastError reports the most recent data-layer failure, if any. It is a
// side channel: outcomes themselves never carry an error.
func (s *insightsService) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
