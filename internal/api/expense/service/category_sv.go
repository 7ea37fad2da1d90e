package expenseService

import (
	"context"
	"time"

	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *categoryService) CreateCategory(ctx context.Context, req expense.CreateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	category := entity.Category{
		ID:          ULID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		UserID:      req.UserID,
		CreatedAt:   time.Now(),
	}

	if err := category.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid category data")
		return err
	}

	if err := repo.Categories.CreateCategory(ctx, category); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return expense.ErrCreateCategory
	}

	return nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, req expense.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Categories.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if existing.IsDefault() {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": req.ID,
		}).Warn("Attempt to modify default category")
		return expense.ErrCategoryImmutable
	}

	if existing.UserID != req.UserID {
		return expense.ErrCategoryNotOwned
	}

	category := entity.Category{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		UserID:      req.UserID,
		CreatedAt:   existing.CreatedAt,
	}

	if err := category.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid category data")
		return err
	}

	if err := repo.Categories.UpdateCategory(ctx, category); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return expense.ErrUpdateCategory
	}

	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.IsDefault() {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": id,
		}).Warn("Attempt to delete default category")
		return expense.ErrCategoryImmutable
	}

	if existing.UserID != userID {
		return expense.ErrCategoryNotOwned
	}

	if err := repo.Categories.DeleteCategory(ctx, id, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return expense.ErrDeleteCategory
	}

	return nil
}

// GetCategoryByID returns the category together with the user's all-time
// spend in it.
func (s *categoryService) GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, float64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, 0, err
	}

	category, err := repo.Categories.GetByID(ctx, id)
	if err != nil {
		return entity.Category{}, 0, err
	}

	if !category.IsDefault() && category.UserID != userID {
		return entity.Category{}, 0, expense.ErrCategoryNotOwned
	}

	spent, err := repo.Expenses.SumByCategory(ctx, userID, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sum category spend")
		return entity.Category{}, 0, err
	}

	return category, spent, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	categories, err := repo.Categories.ListForUser(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list categories")
		return nil, err
	}

	return categories, nil
}
