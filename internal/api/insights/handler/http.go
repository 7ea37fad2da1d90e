package insightsHandler

import (
	insightsService "ExpenseTracker/internal/api/insights/service"
	"ExpenseTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type InsightsHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	insightsService insightsService.IInsightsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	insightsService insightsService.IInsightsService,
) *InsightsHandler {
	return &InsightsHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		insightsService: insightsService,
	}
}

func (h *InsightsHandler) Start(srv fiber.Router) {
	srv.Get("/insights", h.middleware.NewTokenMiddleware, h.Insights)
	srv.Get("/insights/dashboard", h.middleware.NewTokenMiddleware, h.Dashboard)
	srv.Get("/insights/monthly", h.middleware.NewTokenMiddleware, h.MonthlySeries)
}
