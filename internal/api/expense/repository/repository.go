package expenseRepository

import (
	"context"

	"ExpenseTracker/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Expenses:   &expenseRepository{q: sqlExecutor, log: r.log},
		Categories: &categoryRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Expenses interface {
		CreateExpense(ctx context.Context, expense entity.Expense) error
		UpdateExpense(ctx context.Context, expense entity.Expense) error
		DeleteExpense(ctx context.Context, id string) error
		GetByID(ctx context.Context, id string) (entity.Expense, error)
		ListByUser(ctx context.Context, userID string) ([]entity.Expense, error)
		ListByCategory(ctx context.Context, userID, categoryID string) ([]entity.Expense, error)
		ListByDateRange(ctx context.Context, userID, startDate, endDate string) ([]entity.Expense, error)
		ListByCategoryAndDateRange(ctx context.Context, userID, categoryID, startDate, endDate string) ([]entity.Expense, error)
		ListByLocation(ctx context.Context, userID, location string) ([]entity.Expense, error)
		ListRecent(ctx context.Context, userID string, limit int) ([]entity.Expense, error)
		SumByUser(ctx context.Context, userID string) (float64, error)
		SumByCategory(ctx context.Context, userID, categoryID string) (float64, error)
		SumByDateRange(ctx context.Context, userID, startDate, endDate string) (float64, error)
	}

	Categories interface {
		CreateCategory(ctx context.Context, category entity.Category) error
		UpdateCategory(ctx context.Context, category entity.Category) error
		DeleteCategory(ctx context.Context, id, userID string) error
		GetByID(ctx context.Context, id string) (entity.Category, error)
		ListForUser(ctx context.Context, userID string) ([]entity.Category, error)
	}

	Commit   func() error
	Rollback func() error
}

type expenseRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
