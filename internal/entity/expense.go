package entity

import (
	"time"

	"ExpenseTracker/internal/api/expense"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Expense is a single recorded transaction. Date and time are stored as
// canonical strings ("2006-01-02" / "15:04") so date ranges compare
// lexicographically.
type Expense struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Amount     float64   `json:"amount"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Location   string    `json:"location"`
	CategoryID string    `json:"category_id"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (e *Expense) Validate() error {
	if e.Title == "" {
		return expense.ErrInvalidTitle
	}

	if e.Amount <= 0 {
		return expense.ErrInvalidAmount
	}

	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return expense.ErrInvalidDate
	}

	if _, err := time.Parse(TimeLayout, e.Time); err != nil {
		return expense.ErrInvalidTime
	}

	return nil
}
