package entity

import (
	"testing"

	"ExpenseTracker/internal/api/expense"

	"github.com/stretchr/testify/assert"
)

func validExpense() Expense {
	return Expense{
		ID:     "01HZX000000000000000000000",
		UserID: "01HZX000000000000000000001",
		Title:  "Lunch",
		Amount: 12.5,
		Date:   "2024-06-10",
		Time:   "12:30",
	}
}

func TestExpenseValidate(t *testing.T) {
	exp := validExpense()
	assert.NoError(t, exp.Validate())
}

func TestExpenseValidateRejectsEmptyTitle(t *testing.T) {
	exp := validExpense()
	exp.Title = ""
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidTitle)
}

func TestExpenseValidateRejectsNonPositiveAmount(t *testing.T) {
	exp := validExpense()
	exp.Amount = 0
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidAmount)

	exp.Amount = -5
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidAmount)
}

func TestExpenseValidateRejectsBadDate(t *testing.T) {
	exp := validExpense()
	exp.Date = "10-06-2024"
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidDate)
}

func TestExpenseValidateRejectsBadTime(t *testing.T) {
	exp := validExpense()
	exp.Time = "12:30:00"
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidTime)
}

func TestCategoryIsDefault(t *testing.T) {
	defaultCategory := Category{ID: "c1", Name: "Food & Dining"}
	assert.True(t, defaultCategory.IsDefault())

	userCategory := Category{ID: "c2", Name: "Hobby", UserID: "u1"}
	assert.False(t, userCategory.IsDefault())
}

func TestCategoryValidate(t *testing.T) {
	category := Category{ID: "c1", Name: "Hobby", UserID: "u1"}
	assert.NoError(t, category.Validate())

	category.Name = ""
	assert.ErrorIs(t, category.Validate(), expense.ErrInvalidCategoryName)
}
