package insightsService

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"ExpenseTracker/internal/api/expense"
	expenseRepository "ExpenseTracker/internal/api/expense/repository"
	"ExpenseTracker/internal/entity"
	"ExpenseTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpenses struct {
	expenses []entity.Expense
	sums     map[string]float64
	err      error
	calls    []string
}

func (f *fakeExpenses) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeExpenses) CreateExpense(ctx context.Context, exp entity.Expense) error { return f.err }
func (f *fakeExpenses) UpdateExpense(ctx context.Context, exp entity.Expense) error { return f.err }
func (f *fakeExpenses) DeleteExpense(ctx context.Context, id string) error          { return f.err }

func (f *fakeExpenses) GetByID(ctx context.Context, id string) (entity.Expense, error) {
	return entity.Expense{}, f.err
}

func (f *fakeExpenses) ListByUser(ctx context.Context, userID string) ([]entity.Expense, error) {
	f.record("ListByUser")
	return f.expenses, f.err
}

func (f *fakeExpenses) filter(keep func(entity.Expense) bool) []entity.Expense {
	matched := make([]entity.Expense, 0, len(f.expenses))
	for _, exp := range f.expenses {
		if keep(exp) {
			matched = append(matched, exp)
		}
	}
	return matched
}

func (f *fakeExpenses) ListByCategory(ctx context.Context, userID, categoryID string) ([]entity.Expense, error) {
	f.record("ListByCategory")
	return f.filter(func(e entity.Expense) bool { return e.CategoryID == categoryID }), f.err
}

func (f *fakeExpenses) ListByDateRange(ctx context.Context, userID, startDate, endDate string) ([]entity.Expense, error) {
	f.record("ListByDateRange")
	return f.filter(func(e entity.Expense) bool { return e.Date >= startDate && e.Date <= endDate }), f.err
}

func (f *fakeExpenses) ListByCategoryAndDateRange(ctx context.Context, userID, categoryID, startDate, endDate string) ([]entity.Expense, error) {
	f.record("ListByCategoryAndDateRange")
	return f.filter(func(e entity.Expense) bool {
		return e.CategoryID == categoryID && e.Date >= startDate && e.Date <= endDate
	}), f.err
}

func (f *fakeExpenses) ListByLocation(ctx context.Context, userID, location string) ([]entity.Expense, error) {
	f.record("ListByLocation")
	return f.filter(func(e entity.Expense) bool { return strings.Contains(e.Location, location) }), f.err
}

func (f *fakeExpenses) ListRecent(ctx context.Context, userID string, limit int) ([]entity.Expense, error) {
	f.record("ListRecent")
	if limit < len(f.expenses) {
		return f.expenses[:limit], f.err
	}
	return f.expenses, f.err
}

func (f *fakeExpenses) SumByUser(ctx context.Context, userID string) (float64, error) {
	return f.sums["all"], f.err
}

func (f *fakeExpenses) SumByCategory(ctx context.Context, userID, categoryID string) (float64, error) {
	var total float64
	for _, exp := range f.filter(func(e entity.Expense) bool { return e.CategoryID == categoryID }) {
		total += exp.Amount
	}
	return total, f.err
}

func (f *fakeExpenses) SumByDateRange(ctx context.Context, userID, startDate, endDate string) (float64, error) {
	return f.sums[startDate+".."+endDate], f.err
}

type fakeCategories struct {
	categories []entity.Category
	err        error
}

func (f *fakeCategories) CreateCategory(ctx context.Context, category entity.Category) error {
	return f.err
}

func (f *fakeCategories) UpdateCategory(ctx context.Context, category entity.Category) error {
	return f.err
}

func (f *fakeCategories) DeleteCategory(ctx context.Context, id, userID string) error { return f.err }

func (f *fakeCategories) GetByID(ctx context.Context, id string) (entity.Category, error) {
	return entity.Category{}, f.err
}

func (f *fakeCategories) ListForUser(ctx context.Context, userID string) ([]entity.Category, error) {
	return f.categories, f.err
}

type fakeRepository struct {
	client expenseRepository.Client
	err    error
}

func (f *fakeRepository) NewClient(tx bool) (expenseRepository.Client, error) {
	if f.err != nil {
		return expenseRepository.Client{}, f.err
	}
	return f.client, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(expenses *fakeExpenses, categories *fakeCategories) IInsightsService {
	repo := &fakeRepository{
		client: expenseRepository.Client{
			Expenses:   expenses,
			Categories: categories,
			Commit:     func() error { return nil },
			Rollback:   func() error { return nil },
		},
	}
	return New(quietLogger(), repo, utils.New())
}

func receive[T any](t *testing.T, ch <-chan Outcome[T]) Outcome[T] {
	t.Helper()
	select {
	case outcome := <-ch:
		return outcome
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not fulfill the outcome in time")
		return Outcome[T]{}
	}
}

func TestDashboard(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)

	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{ID: "e1", Amount: 10, Date: "2024-06-11", Time: "09:00"},
			{ID: "e2", Amount: 20, Date: "2024-06-10", Time: "08:00"},
		},
		sums: map[string]float64{
			"all":                    500,
			"2024-06-01..2024-06-30": 120,
			"2024-06-10..2024-06-16": 30,
		},
	}

	svc := newTestService(expenses, &fakeCategories{})

	outcome := receive(t, svc.Dashboard(context.Background(), "u1", now))
	require.Empty(t, outcome.Diag)

	assert.Equal(t, 500.0, outcome.Value.TotalAll)
	assert.Equal(t, 120.0, outcome.Value.TotalMonth)
	assert.Equal(t, 30.0, outcome.Value.TotalWeek)
	require.Len(t, outcome.Value.Recent, 2)
	assert.Equal(t, "e1", outcome.Value.Recent[0].ID)

	// Neither fixture expense carries a category.
	require.Len(t, outcome.Value.Categories, 1)
	assert.Equal(t, "Uncategorized", outcome.Value.Categories[0].Label)
	assert.Equal(t, 30.0, outcome.Value.Categories[0].Amount)

	assert.NoError(t, svc.LastError())
}

func TestDashboardDegradesOnRepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	expenses := &fakeExpenses{err: boom}

	svc := newTestService(expenses, &fakeCategories{})

	outcome := receive(t, svc.Dashboard(context.Background(), "u1", time.Now()))

	assert.Equal(t, boom.Error(), outcome.Diag)
	assert.Equal(t, 0.0, outcome.Value.TotalAll)
	assert.NotNil(t, outcome.Value.Recent)
	assert.Empty(t, outcome.Value.Recent)
	assert.NotNil(t, outcome.Value.Categories)
	assert.Empty(t, outcome.Value.Categories)
	assert.ErrorIs(t, svc.LastError(), boom)
}

func TestInsights(t *testing.T) {
	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{ID: "e1", Amount: 100, Date: "2024-06-01", CategoryID: "cat-food", Location: "Downtown"},
			{ID: "e2", Amount: 80, Date: "2024-06-05", CategoryID: "cat-food"},
			{ID: "e3", Amount: 20, Date: "2024-06-10", CategoryID: "cat-travel"},
		},
	}
	categories := &fakeCategories{
		categories: []entity.Category{
			{ID: "cat-food", Name: "Food & Dining", Color: "#4CAF50"},
			{ID: "cat-travel", Name: "Transportation", Color: "#2196F3"},
		},
	}

	svc := newTestService(expenses, categories)

	filter := expense.ListFilter{StartDate: "2024-06-01", EndDate: "2024-06-10"}
	outcome := receive(t, svc.Insights(context.Background(), "u1", filter))
	require.Empty(t, outcome.Diag)

	assert.Equal(t, 200.0, outcome.Value.Total)
	require.Len(t, outcome.Value.Categories, 2)
	assert.Equal(t, "Food & Dining", outcome.Value.Categories[0].Label)
	assert.Equal(t, 90.0, outcome.Value.Categories[0].Percentage)
	assert.Equal(t, "Food & Dining", outcome.Value.TopCategory)

	require.NotNil(t, outcome.Value.MaxExpense)
	assert.Equal(t, "e1", outcome.Value.MaxExpense.ID)

	require.Len(t, outcome.Value.Locations, 1)
	assert.Equal(t, "Downtown", outcome.Value.Locations[0].Label)

	require.Len(t, outcome.Value.Months, 1)
	assert.Equal(t, "Jun 2024", outcome.Value.Months[0].Label)
	assert.Equal(t, 200.0, outcome.Value.Months[0].Amount)

	// 200 over the 10-day inclusive range.
	assert.Equal(t, 20.0, outcome.Value.AverageDailySpend)
}

func TestInsightsBreaksDownByMonth(t *testing.T) {
	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{ID: "e1", Amount: 60, Date: "2024-01-10", CategoryID: "cat-food"},
			{ID: "e2", Amount: 40, Date: "2024-02-05", CategoryID: "cat-food"},
		},
	}
	categories := &fakeCategories{
		categories: []entity.Category{{ID: "cat-food", Name: "Food & Dining"}},
	}

	svc := newTestService(expenses, categories)

	filter := expense.ListFilter{StartDate: "2024-01-01", EndDate: "2024-02-29"}
	outcome := receive(t, svc.Insights(context.Background(), "u1", filter))
	require.Empty(t, outcome.Diag)

	require.Len(t, outcome.Value.Months, 2)
	assert.Equal(t, "Jan 2024", outcome.Value.Months[0].Label)
	assert.Equal(t, 60.0, outcome.Value.Months[0].Amount)
	assert.Equal(t, "Feb 2024", outcome.Value.Months[1].Label)
	assert.Equal(t, 40.0, outcome.Value.Months[1].Amount)
}

func TestInsightsRecordsUnparseableDateSpan(t *testing.T) {
	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{ID: "e1", Amount: 50, Date: "garbage-date"},
		},
	}

	svc := newTestService(expenses, &fakeCategories{})

	outcome := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{}))

	assert.Equal(t, 50.0, outcome.Value.Total)
	assert.Equal(t, 0.0, outcome.Value.AverageDailySpend)
	assert.Error(t, svc.LastError())
}

func TestInsightsTopCategorySkipsUnresolvable(t *testing.T) {
	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{ID: "e1", Amount: 500, Date: "2024-06-01", CategoryID: "ghost"},
		},
	}

	svc := newTestService(expenses, &fakeCategories{})

	outcome := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{}))
	require.Empty(t, outcome.Diag)

	assert.Equal(t, "", outcome.Value.TopCategory)
	require.Len(t, outcome.Value.Categories, 1)
	assert.Equal(t, "Uncategorized", outcome.Value.Categories[0].Label)
}

func TestInsightsUsesCompoundQueryForCategoryAndRange(t *testing.T) {
	expenses := &fakeExpenses{}
	svc := newTestService(expenses, &fakeCategories{})

	filter := expense.ListFilter{
		CategoryID: "cat-food",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-30",
	}
	receive(t, svc.Insights(context.Background(), "u1", filter))

	require.Len(t, expenses.calls, 1)
	assert.Equal(t, "ListByCategoryAndDateRange", expenses.calls[0])
}

func TestInsightsCompoundFilterMatchesIntersection(t *testing.T) {
	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{ID: "e1", Amount: 50, Date: "2024-06-05", CategoryID: "cat-food"},
			{ID: "e2", Amount: 30, Date: "2024-07-02", CategoryID: "cat-food"},
			{ID: "e3", Amount: 20, Date: "2024-06-10", CategoryID: "cat-travel"},
		},
	}
	categories := &fakeCategories{
		categories: []entity.Category{
			{ID: "cat-food", Name: "Food & Dining", Color: "#4CAF50"},
			{ID: "cat-travel", Name: "Transportation", Color: "#2196F3"},
		},
	}

	svc := newTestService(expenses, categories)

	byCategory := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{
		CategoryID: "cat-food",
	}))
	byRange := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	}))
	compound := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{
		CategoryID: "cat-food",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-30",
	}))

	assert.Equal(t, 80.0, byCategory.Value.Total)
	assert.Equal(t, 70.0, byRange.Value.Total)

	// Only e1 satisfies both filters.
	assert.Equal(t, 50.0, compound.Value.Total)
	require.Len(t, compound.Value.Categories, 1)
	assert.Equal(t, "Food & Dining", compound.Value.Categories[0].Label)
}

func TestInsightsInvertedRangeIsEmpty(t *testing.T) {
	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{ID: "e1", Amount: 50, Date: "2024-06-05", CategoryID: "cat-food"},
		},
	}

	svc := newTestService(expenses, &fakeCategories{})

	outcome := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{
		StartDate: "2024-06-30",
		EndDate:   "2024-06-01",
	}))
	require.Empty(t, outcome.Diag)

	assert.Equal(t, 0.0, outcome.Value.Total)
	assert.Empty(t, outcome.Value.Categories)
	assert.Nil(t, outcome.Value.MaxExpense)
}

func TestInsightsIsIdempotent(t *testing.T) {
	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{ID: "e1", Amount: 40, Date: "2024-06-01", CategoryID: "cat-food"},
		},
	}
	categories := &fakeCategories{
		categories: []entity.Category{{ID: "cat-food", Name: "Food & Dining"}},
	}

	svc := newTestService(expenses, categories)

	first := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{}))
	second := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{}))

	assert.Equal(t, first.Value, second.Value)
}

func TestInsightsEmpty(t *testing.T) {
	svc := newTestService(&fakeExpenses{}, &fakeCategories{})

	outcome := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{}))
	require.Empty(t, outcome.Diag)

	assert.Equal(t, 0.0, outcome.Value.Total)
	assert.Empty(t, outcome.Value.Categories)
	assert.Empty(t, outcome.Value.Locations)
	assert.Empty(t, outcome.Value.Months)
	assert.Nil(t, outcome.Value.MaxExpense)
	assert.Equal(t, "", outcome.Value.TopCategory)
	assert.Equal(t, 0.0, outcome.Value.AverageDailySpend)
}

func TestMonthlySeriesIncludesZeroMonths(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	expenses := &fakeExpenses{
		expenses: []entity.Expense{
			{Amount: 60, Date: "2024-04-10"},
			{Amount: 40, Date: "2024-06-01"},
		},
	}

	svc := newTestService(expenses, &fakeCategories{})

	outcome := receive(t, svc.MonthlySeries(context.Background(), "u1", 3, now))
	require.Empty(t, outcome.Diag)

	require.Len(t, outcome.Value.Months, 3)
	assert.Equal(t, "Apr 2024", outcome.Value.Months[0].Label)
	assert.Equal(t, 60.0, outcome.Value.Months[0].Amount)
	assert.Equal(t, "May 2024", outcome.Value.Months[1].Label)
	assert.Equal(t, 0.0, outcome.Value.Months[1].Amount)
	assert.Equal(t, "Jun 2024", outcome.Value.Months[2].Label)
	assert.Equal(t, 40.0, outcome.Value.Months[2].Amount)
	assert.Equal(t, 100.0, outcome.Value.Total)
}

func TestMonthlySeriesDefaultsMonths(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeExpenses{}, &fakeCategories{})

	outcome := receive(t, svc.MonthlySeries(context.Background(), "u1", 0, now))
	assert.Len(t, outcome.Value.Months, DefaultSeriesMonths)
}

func TestEngineDegradesWhenClientCannotBeCreated(t *testing.T) {
	boom := errors.New("no database")
	svc := New(quietLogger(), &fakeRepository{err: boom}, utils.New())

	outcome := receive(t, svc.Insights(context.Background(), "u1", expense.ListFilter{}))
	assert.Equal(t, boom.Error(), outcome.Diag)
	assert.ErrorIs(t, svc.LastError(), boom)
}
