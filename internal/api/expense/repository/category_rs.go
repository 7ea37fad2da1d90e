package expenseRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type categoryDB struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	UserID      string    `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
}

func (c *categoryDB) makeCategory() entity.Category {
	return entity.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category entity.Category) error {
	argsKV := map[string]interface{}{
		"id":          category.ID,
		"name":        category.Name,
		"description": category.Description,
		"color":       category.Color,
		"user_id":     category.UserID,
		"created_at":  category.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.CreateCategory] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.CreateCategory] failed to insert category")
		return err
	}

	return nil
}

// UpdateCategory only matches rows owned by the given user, so default
// categories (empty user_id) are never touched.
func (r *categoryRepository) UpdateCategory(ctx context.Context, category entity.Category) error {
	argsKV := map[string]interface{}{
		"id":          category.ID,
		"name":        category.Name,
		"description": category.Description,
		"color":       category.Color,
		"user_id":     category.UserID,
	}

	query, args, err := sqlx.Named(queryUpdateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.UpdateCategory] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.UpdateCategory] failed to update category")
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return expense.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id, userID string) error {
	query, args, err := sqlx.Named(queryDeleteCategory, map[string]interface{}{
		"id":      id,
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.DeleteCategory] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.DeleteCategory] failed to delete category")
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return expense.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (entity.Category, error) {
	query, args, err := sqlx.Named(queryGetCategoryByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.GetByID] failed to build query")
		return entity.Category{}, err
	}
	query = r.q.Rebind(query)

	var row categoryDB
	err = r.q.QueryRowxContext(ctx, query, args...).StructScan(&row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Category{}, expense.ErrCategoryNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.GetByID] failed to get category")
		return entity.Category{}, err
	}

	return row.makeCategory(), nil
}

// ListForUser returns the shared default categories followed by the
// user's own.
func (r *categoryRepository) ListForUser(ctx context.Context, userID string) ([]entity.Category, error) {
	query, args, err := sqlx.Named(queryListCategoriesForUser, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.ListForUser] failed to build query")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []categoryDB
	err = r.q.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[categoryRepository.ListForUser] failed to list categories")
		return nil, err
	}

	categories := make([]entity.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, rows[i].makeCategory())
	}

	return categories, nil
}
