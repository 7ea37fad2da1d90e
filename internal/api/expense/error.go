package expense

import (
	"ExpenseTracker/pkg/response"
	"net/http"
)

var (
	ErrExpenseNotFound     = response.NewError(http.StatusNotFound, "expense not found")
	ErrExpenseNotOwned     = response.NewError(http.StatusForbidden, "expense does not belong to user")
	ErrInvalidTitle        = response.NewError(http.StatusBadRequest, "expense title is required")
	ErrInvalidAmount       = response.NewError(http.StatusBadRequest, "expense amount must be greater than zero")
	ErrInvalidDate         = response.NewError(http.StatusBadRequest, "expense date must be in YYYY-MM-DD format")
	ErrInvalidTime         = response.NewError(http.StatusBadRequest, "expense time must be in HH:MM format")
	ErrCreateExpense       = response.NewError(http.StatusInternalServerError, "failed to create expense")
	ErrUpdateExpense       = response.NewError(http.StatusInternalServerError, "failed to update expense")
	ErrDeleteExpense       = response.NewError(http.StatusInternalServerError, "failed to delete expense")
	ErrCategoryNotFound    = response.NewError(http.StatusNotFound, "category not found")
	ErrCategoryNotOwned    = response.NewError(http.StatusForbidden, "category does not belong to user")
	ErrCategoryImmutable   = response.NewError(http.StatusForbidden, "default categories cannot be modified")
	ErrInvalidCategoryName = response.NewError(http.StatusBadRequest, "category name is required")
	ErrCreateCategory      = response.NewError(http.StatusInternalServerError, "failed to create category")
	ErrUpdateCategory      = response.NewError(http.StatusInternalServerError, "failed to update category")
	ErrDeleteCategory      = response.NewError(http.StatusInternalServerError, "failed to delete category")
)
