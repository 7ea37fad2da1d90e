package insightsHandler

import (
	"context"
	"time"

	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/api/insights"
	contextPkg "ExpenseTracker/pkg/context"
	"ExpenseTracker/pkg/handlerUtil"
	jwtPkg "ExpenseTracker/pkg/jwt"
	"ExpenseTracker/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *InsightsHandler) Dashboard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing dashboard request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	select {
	case outcome := <-h.insightsService.Dashboard(c, userData.ID, time.Now()):
		if outcome.Diag != "" {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"diag":       outcome.Diag,
			}).Warn("Dashboard served degraded data")
		}
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, outcome.Value)
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	}
}

func (h *InsightsHandler) Insights(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing insights request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var filter expense.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(filter); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	select {
	case outcome := <-h.insightsService.Insights(c, userData.ID, filter):
		if outcome.Diag != "" {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"diag":       outcome.Diag,
			}).Warn("Insights served degraded data")
		}
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, outcome.Value)
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	}
}

func (h *InsightsHandler) MonthlySeries(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing monthly series request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var filter insights.MonthlySeriesFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(filter); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	select {
	case outcome := <-h.insightsService.MonthlySeries(c, userData.ID, filter.Months, time.Now()):
		if outcome.Diag != "" {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"diag":       outcome.Diag,
			}).Warn("Monthly series served degraded data")
		}
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, outcome.Value)
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	}
}
