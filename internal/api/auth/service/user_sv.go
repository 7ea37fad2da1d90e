package authService

import (
	"context"
	"errors"
	"time"

	"ExpenseTracker/internal/api/auth"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/sirupsen/logrus"
)

func makeUser(id string, req auth.CreateUserRequest, hashedPassword string) entity.User {
	now := time.Now()

	return entity.User{
		ID:        id,
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FullName:  req.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *authService) GetProfile(ctx context.Context, userID string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.User{}, err
	}

	return repo.Users.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req auth.UpdateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if req.Email != "" && req.Email != user.Email {
		if existing, err := repo.Users.GetByEmail(ctx, req.Email); err == nil && existing.ID != userID {
			return auth.ErrEmailAlreadyInUse
		} else if err != nil && !errors.Is(err, auth.ErrUserNotFound) {
			return err
		}
		user.Email = req.Email
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}

	user.UpdatedAt = time.Now()

	if err := repo.Users.UpdateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return err
	}

	return nil
}

func (s *authService) DeleteUser(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Users.DeleteUser(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return err
	}

	// Expenses cascade with the user row; the session has to go separately.
	if err := s.sessions.EndSession(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to end session after account deletion")
	}

	return nil
}
