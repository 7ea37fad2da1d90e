package expenseRepository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type expenseDB struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Title      string    `db:"title"`
	Amount     float64   `db:"amount"`
	Date       string    `db:"date"`
	Time       string    `db:"time"`
	Location   string    `db:"location"`
	CategoryID string    `db:"category_id"`
	Notes      string    `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (e *expenseDB) makeExpense() entity.Expense {
	return entity.Expense{
		ID:         e.ID,
		UserID:     e.UserID,
		Title:      e.Title,
		Amount:     e.Amount,
		Date:       e.Date,
		Time:       e.Time,
		Location:   e.Location,
		CategoryID: e.CategoryID,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func makeExpenses(rows []expenseDB) []entity.Expense {
	expenses := make([]entity.Expense, 0, len(rows))
	for i := range rows {
		expenses = append(expenses, rows[i].makeExpense())
	}
	return expenses
}

func (r *expenseRepository) CreateExpense(ctx context.Context, exp entity.Expense) error {
	argsKV := map[string]interface{}{
		"id":          exp.ID,
		"user_id":     exp.UserID,
		"title":       exp.Title,
		"amount":      exp.Amount,
		"date":        exp.Date,
		"time":        exp.Time,
		"location":    exp.Location,
		"category_id": exp.CategoryID,
		"notes":       exp.Notes,
		"created_at":  exp.CreatedAt,
		"updated_at":  exp.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository.CreateExpense] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository.CreateExpense] failed to insert expense")
		return err
	}

	return nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, exp entity.Expense) error {
	argsKV := map[string]interface{}{
		"id":          exp.ID,
		"title":       exp.Title,
		"amount":      exp.Amount,
		"date":        exp.Date,
		"time":        exp.Time,
		"location":    exp.Location,
		"category_id": exp.CategoryID,
		"notes":       exp.Notes,
		"updated_at":  exp.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository.UpdateExpense] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository.UpdateExpense] failed to update expense")
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, id string) error {
	query, args, err := sqlx.Named(queryDeleteExpense, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository.DeleteExpense] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository.DeleteExpense] failed to delete expense")
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (entity.Expense, error) {
	query, args, err := sqlx.Named(queryGetExpenseByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository.GetByID] failed to build query")
		return entity.Expense{}, err
	}
	query = r.q.Rebind(query)

	var row expenseDB
	err = r.q.QueryRowxContext(ctx, query, args...).StructScan(&row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Expense{}, expense.ErrExpenseNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository.GetByID] failed to get expense")
		return entity.Expense{}, err
	}

	return row.makeExpense(), nil
}

func (r *expenseRepository) ListByUser(ctx context.Context, userID string) ([]entity.Expense, error) {
	return r.listExpenses(ctx, queryListExpensesByUser, map[string]interface{}{
		"user_id": userID,
	}, "ListByUser")
}

func (r *expenseRepository) ListByCategory(ctx context.Context, userID, categoryID string) ([]entity.Expense, error) {
	return r.listExpenses(ctx, queryListExpensesByCategory, map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
	}, "ListByCategory")
}

func (r *expenseRepository) ListByDateRange(ctx context.Context, userID, startDate, endDate string) ([]entity.Expense, error) {
	return r.listExpenses(ctx, queryListExpensesByDateRange, map[string]interface{}{
		"user_id":    userID,
		"start_date": startDate,
		"end_date":   endDate,
	}, "ListByDateRange")
}

func (r *expenseRepository) ListByCategoryAndDateRange(ctx context.Context, userID, categoryID, startDate, endDate string) ([]entity.Expense, error) {
	return r.listExpenses(ctx, queryListExpensesByCategoryAndDateRange, map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
		"start_date":  startDate,
		"end_date":    endDate,
	}, "ListByCategoryAndDateRange")
}

// likeEscaper neutralizes LIKE metacharacters so a location search matches
// them literally. Backslash is Postgres's default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *expenseRepository) ListByLocation(ctx context.Context, userID, location string) ([]entity.Expense, error) {
	return r.listExpenses(ctx, queryListExpensesByLocation, map[string]interface{}{
		"user_id":  userID,
		"location": "%" + likeEscaper.Replace(location) + "%",
	}, "ListByLocation")
}

func (r *expenseRepository) ListRecent(ctx context.Context, userID string, limit int) ([]entity.Expense, error) {
	return r.listExpenses(ctx, queryListRecentExpenses, map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}, "ListRecent")
}

func (r *expenseRepository) listExpenses(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) ([]entity.Expense, error) {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository." + op + "] failed to build query")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []expenseDB
	err = r.q.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository." + op + "] failed to list expenses")
		return nil, err
	}

	return makeExpenses(rows), nil
}

func (r *expenseRepository) SumByUser(ctx context.Context, userID string) (float64, error) {
	return r.sumExpenses(ctx, querySumExpensesByUser, map[string]interface{}{
		"user_id": userID,
	}, "SumByUser")
}

func (r *expenseRepository) SumByCategory(ctx context.Context, userID, categoryID string) (float64, error) {
	return r.sumExpenses(ctx, querySumExpensesByCategory, map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
	}, "SumByCategory")
}

func (r *expenseRepository) SumByDateRange(ctx context.Context, userID, startDate, endDate string) (float64, error) {
	return r.sumExpenses(ctx, querySumExpensesByDateRange, map[string]interface{}{
		"user_id":    userID,
		"start_date": startDate,
		"end_date":   endDate,
	}, "SumByDateRange")
}

func (r *expenseRepository) sumExpenses(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) (float64, error) {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository." + op + "] failed to build query")
		return 0, err
	}
	query = r.q.Rebind(query)

	var total float64
	err = r.q.QueryRowxContext(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[expenseRepository." + op + "] failed to sum expenses")
		return 0, err
	}

	return total, nil
}
