package expenseHandler

import (
	expenseService "ExpenseTracker/internal/api/expense/service"
	"ExpenseTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	expenseService  expenseService.IExpenseService
	categoryService expenseService.ICategoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	expenseService expenseService.IExpenseService,
	categoryService expenseService.ICategoryService,
) *ExpenseHandler {
	return &ExpenseHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		expenseService:  expenseService,
		categoryService: categoryService,
	}
}

func (h *ExpenseHandler) Start(srv fiber.Router) {
	srv.Post("/expenses", h.middleware.NewTokenMiddleware, h.CreateExpense)
	srv.Get("/expenses", h.middleware.NewTokenMiddleware, h.ListExpenses)
	srv.Get("/expenses/:id", h.middleware.NewTokenMiddleware, h.GetExpenseByID)
	srv.Put("/expenses", h.middleware.NewTokenMiddleware, h.UpdateExpense)
	srv.Delete("/expenses/:id", h.middleware.NewTokenMiddleware, h.DeleteExpense)

	srv.Post("/categories", h.middleware.NewTokenMiddleware, h.CreateCategory)
	srv.Get("/categories", h.middleware.NewTokenMiddleware, h.ListCategories)
	srv.Get("/categories/:id", h.middleware.NewTokenMiddleware, h.GetCategoryByID)
	srv.Put("/categories", h.middleware.NewTokenMiddleware, h.UpdateCategory)
	srv.Delete("/categories/:id", h.middleware.NewTokenMiddleware, h.DeleteCategory)
}
