package insightsService

import (
	"testing"

	"ExpenseTracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCategories() map[string]entity.Category {
	return map[string]entity.Category{
		"cat-food":   {ID: "cat-food", Name: "Food & Dining", Color: "#4CAF50"},
		"cat-travel": {ID: "cat-travel", Name: "Transportation", Color: "#2196F3"},
	}
}

func TestSumAmounts(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 100},
		{Amount: 80},
		{Amount: 20},
	}

	assert.Equal(t, 200.0, sumAmounts(expenses))
	assert.Equal(t, 0.0, sumAmounts(nil))
}

func TestPercentageOf(t *testing.T) {
	assert.Equal(t, 50.0, percentageOf(100, 200))
	assert.Equal(t, 40.0, percentageOf(80, 200))
	assert.Equal(t, 10.0, percentageOf(20, 200))
	assert.Equal(t, 0.0, percentageOf(50, 0))
}

func TestCategorySummaries(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 100, CategoryID: "cat-food"},
		{Amount: 60, CategoryID: "cat-food"},
		{Amount: 20, CategoryID: "cat-travel"},
		{Amount: 20, CategoryID: ""},
	}

	items := categorySummaries(expenses, fixtureCategories())
	require.Len(t, items, 3)

	assert.Equal(t, "Food & Dining", items[0].Label)
	assert.Equal(t, 160.0, items[0].Amount)
	assert.Equal(t, 80.0, items[0].Percentage)
	assert.Equal(t, "#4CAF50", items[0].Color)
	assert.Equal(t, 2, items[0].Count)

	var sum float64
	for _, item := range items {
		sum += item.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestCategorySummariesOmitsZeroSpendCategories(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 50, CategoryID: "cat-food"},
	}

	items := categorySummaries(expenses, fixtureCategories())
	require.Len(t, items, 1)
	assert.Equal(t, "Food & Dining", items[0].Label)
}

func TestCategorySummariesUncategorizedBucket(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 30, CategoryID: ""},
		{Amount: 10, CategoryID: "missing-category"},
	}

	items := categorySummaries(expenses, fixtureCategories())
	require.Len(t, items, 2)
	assert.Equal(t, uncategorizedLabel, items[0].Label)
	assert.Equal(t, uncategorizedLabel, items[1].Label)
}

func TestCategorySummariesEmpty(t *testing.T) {
	items := categorySummaries(nil, fixtureCategories())
	assert.Empty(t, items)
}

func TestLocationSummaries(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 75, Location: "Downtown"},
		{Amount: 25, Location: "Airport"},
		{Amount: 100, Location: ""},
	}

	items := locationSummaries(expenses, sumAmounts(expenses))
	require.Len(t, items, 2)

	assert.Equal(t, "Downtown", items[0].Label)
	assert.Equal(t, 75.0, items[0].Amount)
	assert.Equal(t, 37.5, items[0].Percentage)
	assert.Equal(t, locationSummaryColor, items[0].Color)
	assert.Equal(t, "Airport", items[1].Label)
	assert.Equal(t, 12.5, items[1].Percentage)
}

func TestLocationSummariesShareOfFullTotal(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 50, Location: "Home"},
		{Amount: 50, Location: ""},
	}

	items := locationSummaries(expenses, sumAmounts(expenses))
	require.Len(t, items, 1)
	assert.Equal(t, "Home", items[0].Label)
	assert.Equal(t, 50.0, items[0].Percentage)
}

func TestMonthSummariesKeepsYearsApart(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 100, Date: "2023-03-10"},
		{Amount: 50, Date: "2024-03-05"},
		{Amount: 50, Date: "2024-03-20"},
	}

	items := monthSummaries(expenses)
	require.Len(t, items, 2)

	assert.Equal(t, "Mar 2023", items[0].Label)
	assert.Equal(t, 100.0, items[0].Amount)
	assert.Equal(t, "Mar 2024", items[1].Label)
	assert.Equal(t, 100.0, items[1].Amount)
	assert.Equal(t, 2, items[1].Count)
	assert.Equal(t, monthSummaryColor, items[0].Color)
}

func TestMonthSummariesSkipsBadDates(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 10, Date: "not-a-date"},
		{Amount: 40, Date: "2024-01-15"},
	}

	items := monthSummaries(expenses)
	require.Len(t, items, 1)
	assert.Equal(t, "Jan 2024", items[0].Label)
	assert.Equal(t, 40.0, items[0].Amount)
}

func TestMaxExpense(t *testing.T) {
	expenses := []entity.Expense{
		{ID: "a", Amount: 10},
		{ID: "b", Amount: 99},
		{ID: "c", Amount: 50},
	}

	max, ok := maxExpense(expenses)
	require.True(t, ok)
	assert.Equal(t, "b", max.ID)

	_, ok = maxExpense(nil)
	assert.False(t, ok)
}

func TestTopCategory(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 100, CategoryID: "cat-food"},
		{Amount: 20, CategoryID: "cat-travel"},
	}

	assert.Equal(t, "Food & Dining", topCategory(expenses, fixtureCategories()))
	assert.Equal(t, "", topCategory(nil, fixtureCategories()))
}

func TestTopCategoryIgnoresUnresolvableCategories(t *testing.T) {
	categories := fixtureCategories()

	expenses := []entity.Expense{
		{Amount: 500, CategoryID: "ghost"},
		{Amount: 300, CategoryID: ""},
		{Amount: 20, CategoryID: "cat-travel"},
	}
	assert.Equal(t, "Transportation", topCategory(expenses, categories))

	onlyUnresolvable := []entity.Expense{
		{Amount: 500, CategoryID: "ghost"},
	}
	assert.Equal(t, "", topCategory(onlyUnresolvable, categories))
}

func TestAverageDaily(t *testing.T) {
	assert.Equal(t, 10.0, averageDaily(100, 10))
	assert.Equal(t, 0.0, averageDaily(100, 0))
	assert.Equal(t, 0.0, averageDaily(100, -3))
}
