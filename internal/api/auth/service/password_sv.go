package authService

import (
	"context"

	"ExpenseTracker/internal/api/auth"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *authService) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
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

	if err := s.bcrypt.ComparePassword(user.Password, req.OldPassword); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("Old password mismatch on password change")
		return auth.ErrInvalidCredentials
	}

	if req.OldPassword == req.NewPassword {
		return auth.ErrPasswordSame
	}

	if !isStrongPassword(req.NewPassword) {
		return auth.ErrWeakPassword
	}

	hashedPassword, err := s.bcrypt.HashPassword(req.NewPassword)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdateUserPassword(ctx, userID, hashedPassword); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update password")
		return err
	}

	return nil
}
