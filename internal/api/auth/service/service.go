package authService

import (
	"context"

	"ExpenseTracker/internal/api/auth"
	authRepository "ExpenseTracker/internal/api/auth/repository"
	"ExpenseTracker/internal/entity"
	"ExpenseTracker/pkg/bcrypt"
	redisPkg "ExpenseTracker/pkg/redis"
	"ExpenseTracker/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	RegisterUser(ctx context.Context, req auth.CreateUserRequest) error
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	Logout(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (entity.User, error)
	UpdateProfile(ctx context.Context, userID string, req auth.UpdateUserRequest) error
	ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, userID string) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	sessions       redisPkg.ISessions
	bcrypt         bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	ar authRepository.Repository,
	sessions redisPkg.ISessions,
	bcrypt bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		sessions:       sessions,
		bcrypt:         bcrypt,
		utils:          utils,
	}
}
