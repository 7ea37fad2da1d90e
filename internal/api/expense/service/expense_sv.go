package expenseService

import (
	"context"
	"time"

	"ExpenseTracker/internal/api/expense"
	expenseRepository "ExpenseTracker/internal/api/expense/repository"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *expenseService) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if req.CategoryID != "" {
		if err := s.checkCategoryAccess(ctx, repo, req.CategoryID, req.UserID); err != nil {
			return err
		}
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	exp := entity.Expense{
		ID:         ULID,
		UserID:     req.UserID,
		Title:      req.Title,
		Amount:     req.Amount,
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := exp.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid expense data")
		return err
	}

	if err := repo.Expenses.CreateExpense(ctx, exp); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")
		return expense.ErrCreateExpense
	}

	return nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Expenses.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": req.ID,
			"user_id":    req.UserID,
		}).Warn("Expense does not belong to user")
		return expense.ErrExpenseNotOwned
	}

	if req.CategoryID != "" {
		if err := s.checkCategoryAccess(ctx, repo, req.CategoryID, req.UserID); err != nil {
			return err
		}
	}

	exp := entity.Expense{
		ID:         req.ID,
		UserID:     req.UserID,
		Title:      req.Title,
		Amount:     req.Amount,
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  time.Now(),
	}

	if err := exp.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid expense data")
		return err
	}

	if err := repo.Expenses.UpdateExpense(ctx, exp); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update expense")
		return expense.ErrUpdateExpense
	}

	return nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Expenses.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": id,
			"user_id":    userID,
		}).Warn("Expense does not belong to user")
		return expense.ErrExpenseNotOwned
	}

	if err := repo.Expenses.DeleteExpense(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete expense")
		return expense.ErrDeleteExpense
	}

	return nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	exp, err := repo.Expenses.GetByID(ctx, id)
	if err != nil {
		return entity.Expense{}, err
	}

	if exp.UserID != userID {
		return entity.Expense{}, expense.ErrExpenseNotOwned
	}

	return exp, nil
}

// ListExpenses applies the filters as one query. Category and date range
// combine conjunctively; location search stands alone. The returned total
// sums exactly the rows returned.
func (s *expenseService) ListExpenses(ctx context.Context, userID string, filter expense.ListFilter) ([]entity.Expense, float64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, 0, err
	}

	var expenses []entity.Expense

	hasRange := filter.StartDate != "" && filter.EndDate != ""

	switch {
	case filter.CategoryID != "" && hasRange:
		expenses, err = repo.Expenses.ListByCategoryAndDateRange(ctx, userID, filter.CategoryID, filter.StartDate, filter.EndDate)
	case filter.CategoryID != "":
		expenses, err = repo.Expenses.ListByCategory(ctx, userID, filter.CategoryID)
	case hasRange:
		expenses, err = repo.Expenses.ListByDateRange(ctx, userID, filter.StartDate, filter.EndDate)
	case filter.Location != "":
		expenses, err = repo.Expenses.ListByLocation(ctx, userID, filter.Location)
	default:
		expenses, err = repo.Expenses.ListByUser(ctx, userID)
	}

	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list expenses")
		return nil, 0, err
	}

	var total float64
	for i := range expenses {
		total += expenses[i].Amount
	}

	return expenses, total, nil
}

func (s *expenseService) checkCategoryAccess(ctx context.Context, repo expenseRepository.Client, categoryID, userID string) error {
	category, err := repo.Categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}

	if !category.IsDefault() && category.UserID != userID {
		return expense.ErrCategoryNotOwned
	}

	return nil
}
