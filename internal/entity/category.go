package entity

import (
	"time"

	"ExpenseTracker/internal/api/expense"
)

// Category is a named, colored grouping for expenses. A category with an
// empty UserID is a default (system) category shared by every user; default
// categories cannot be edited or deleted.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	UserID      string    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Category) IsDefault() bool {
	return c.UserID == ""
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return expense.ErrInvalidCategoryName
	}
	return nil
}
