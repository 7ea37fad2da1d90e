package expenseService

import (
	"context"

	"ExpenseTracker/internal/api/expense"
	expenseRepository "ExpenseTracker/internal/api/expense/repository"
	"ExpenseTracker/internal/entity"
	"ExpenseTracker/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IExpenseService interface {
	CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) error
	UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest) error
	DeleteExpense(ctx context.Context, id string, userID string) error
	GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error)
	ListExpenses(ctx context.Context, userID string, filter expense.ListFilter) ([]entity.Expense, float64, error)
}

type ICategoryService interface {
	CreateCategory(ctx context.Context, req expense.CreateCategoryRequest) error
	UpdateCategory(ctx context.Context, req expense.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id string, userID string) error
	GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, float64, error)
	ListCategories(ctx context.Context, userID string) ([]entity.Category, error)
}

type expenseService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
	utils             utils.IUtils
}

func NewExpenseService(log *logrus.Logger, er expenseRepository.Repository, utils utils.IUtils) IExpenseService {
	return &expenseService{
		log:               log,
		expenseRepository: er,
		utils:             utils,
	}
}

type categoryService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
	utils             utils.IUtils
}

func NewCategoryService(log *logrus.Logger, er expenseRepository.Repository, utils utils.IUtils) ICategoryService {
	return &categoryService{
		log:               log,
		expenseRepository: er,
		utils:             utils,
	}
}
