package authHandler

import (
	authService "ExpenseTracker/internal/api/auth/service"
	"ExpenseTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.IAuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	authService authService.IAuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: authService,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Post("/register", h.middleware.NewRateLimiter, h.RegisterUser)
	auth.Post("/login", h.middleware.NewRateLimiter, h.Login)
	auth.Post("/logout", h.middleware.NewTokenMiddleware, h.Logout)

	users := srv.Group("/users")

	users.Get("/me", h.middleware.NewTokenMiddleware, h.GetProfile)
	users.Patch("/me", h.middleware.NewTokenMiddleware, h.UpdateProfile)
	users.Delete("/me", h.middleware.NewTokenMiddleware, h.DeleteUser)
	users.Patch("/me/password", h.middleware.NewTokenMiddleware, h.ChangePassword)
}
