package insightsService

import (
	"sort"
	"time"

	"ExpenseTracker/internal/entity"
)

const (
	monthSummaryColor    = "#3F51B5"
	locationSummaryColor = "#FF9800"
	uncategorizedLabel   = "Uncategorized"
	uncategorizedColor   = "#9E9E9E"
)

func sumAmounts(expenses []entity.Expense) float64 {
	var total float64
	for i := range expenses {
		total += expenses[i].Amount
	}
	return total
}

// percentageOf is the share of the total in percent. A zero total yields
// zero rather than NaN.
func percentageOf(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount * 100 / total
}

// categorySummaries buckets expenses by category. Categories with no
// spend are omitted; expenses without a category collect under a single
// synthetic bucket. Buckets come out sorted by amount, largest first.
func categorySummaries(expenses []entity.Expense, categories map[string]entity.Category) []entity.ExpenseSummary {
	total := sumAmounts(expenses)

	type bucket struct {
		amount float64
		count  int
	}
	buckets := make(map[string]*bucket)

	for i := range expenses {
		b, ok := buckets[expenses[i].CategoryID]
		if !ok {
			b = &bucket{}
			buckets[expenses[i].CategoryID] = b
		}
		b.amount += expenses[i].Amount
		b.count++
	}

	items := make([]entity.ExpenseSummary, 0, len(buckets))
	for categoryID, b := range buckets {
		label := uncategorizedLabel
		color := uncategorizedColor
		if category, ok := categories[categoryID]; ok {
			label = category.Name
			color = category.Color
		}

		items = append(items, entity.ExpenseSummary{
			Label:      label,
			Amount:     b.amount,
			Percentage: percentageOf(b.amount, total),
			Color:      color,
			Count:      b.count,
		})
	}

	sortByAmountDesc(items)
	return items
}

// locationSummaries buckets expenses by location string. Expenses with no
// location recorded are skipped, but the percentage is still taken against
// the given reference total so location shares line up with the category
// and month breakdowns.
func locationSummaries(expenses []entity.Expense, total float64) []entity.ExpenseSummary {
	type bucket struct {
		amount float64
		count  int
	}
	buckets := make(map[string]*bucket)

	for i := range expenses {
		if expenses[i].Location == "" {
			continue
		}
		b, ok := buckets[expenses[i].Location]
		if !ok {
			b = &bucket{}
			buckets[expenses[i].Location] = b
		}
		b.amount += expenses[i].Amount
		b.count++
	}

	items := make([]entity.ExpenseSummary, 0, len(buckets))
	for location, b := range buckets {
		items = append(items, entity.ExpenseSummary{
			Label:      location,
			Amount:     b.amount,
			Percentage: percentageOf(b.amount, total),
			Color:      locationSummaryColor,
			Count:      b.count,
		})
	}

	sortByAmountDesc(items)
	return items
}

// monthSummaries buckets expenses by calendar month. Labels always carry
// the year ("Jan 2024"), so the same month of different years never folds
// into one bucket. Expenses with unparseable dates are skipped. Buckets
// come out in chronological order.
func monthSummaries(expenses []entity.Expense) []entity.ExpenseSummary {
	total := sumAmounts(expenses)

	type bucket struct {
		amount float64
		count  int
		when   time.Time
	}
	buckets := make(map[string]*bucket)

	for i := range expenses {
		date, err := time.Parse(entity.DateLayout, expenses[i].Date)
		if err != nil {
			continue
		}

		label := date.Format("Jan 2006")
		b, ok := buckets[label]
		if !ok {
			b = &bucket{when: time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)}
			buckets[label] = b
		}
		b.amount += expenses[i].Amount
		b.count++
	}

	type labeled struct {
		label string
		b     *bucket
	}
	ordered := make([]labeled, 0, len(buckets))
	for label, b := range buckets {
		ordered = append(ordered, labeled{label: label, b: b})
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].b.when.Before(ordered[j].b.when)
	})

	items := make([]entity.ExpenseSummary, 0, len(ordered))
	for _, entry := range ordered {
		items = append(items, entity.ExpenseSummary{
			Label:      entry.label,
			Amount:     entry.b.amount,
			Percentage: percentageOf(entry.b.amount, total),
			Color:      monthSummaryColor,
			Count:      entry.b.count,
		})
	}

	return items
}

// maxExpense returns the single largest expense. The second return is
// false for an empty slice.
func maxExpense(expenses []entity.Expense) (entity.Expense, bool) {
	if len(expenses) == 0 {
		return entity.Expense{}, false
	}

	max := expenses[0]
	for i := 1; i < len(expenses); i++ {
		if expenses[i].Amount > max.Amount {
			max = expenses[i]
		}
	}

	return max, true
}

// topCategory is the name of the category with the highest summed spend.
// Expenses whose category cannot be resolved do not participate in the
// ranking; the empty string means nothing could be ranked.
func topCategory(expenses []entity.Expense, categories map[string]entity.Category) string {
	totals := make(map[string]float64)
	for i := range expenses {
		if _, ok := categories[expenses[i].CategoryID]; ok {
			totals[expenses[i].CategoryID] += expenses[i].Amount
		}
	}

	var bestID string
	var bestAmount float64
	for id, amount := range totals {
		if bestID == "" || amount > bestAmount ||
			(amount == bestAmount && categories[id].Name < categories[bestID].Name) {
			bestID = id
			bestAmount = amount
		}
	}

	if bestID == "" {
		return ""
	}
	return categories[bestID].Name
}

// averageDaily spreads the total over the inclusive day count of the
// range. Non-positive day counts yield zero.
func averageDaily(total float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return total / float64(days)
}

func sortByAmountDesc(items []entity.ExpenseSummary) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Amount != items[j].Amount {
			return items[i].Amount > items[j].Amount
		}
		return items[i].Label < items[j].Label
	})
}
