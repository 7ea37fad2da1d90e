package authService

import (
	"context"
	"errors"
	"time"
	"unicode"

	"ExpenseTracker/internal/api/auth"
	contextPkg "ExpenseTracker/pkg/context"
	jwtPkg "ExpenseTracker/pkg/jwt"
	redisPkg "ExpenseTracker/pkg/redis"

	"github.com/sirupsen/logrus"
)

const accessTokenTTL = time.Hour

func (s *authService) RegisterUser(ctx context.Context, req auth.CreateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if !isStrongPassword(req.Password) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   req.Username,
		}).Warn("Weak password on registration")
		return auth.ErrWeakPassword
	}

	if _, err := repo.Users.GetByUsername(ctx, req.Username); err == nil {
		return auth.ErrUsernameAlreadyExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	if _, err := repo.Users.GetByEmail(ctx, req.Email); err == nil {
		return auth.ErrEmailAlreadyExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := s.bcrypt.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	user := makeUser(ULID, req, hashedPassword)

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	return nil
}

// Login accepts a username or an email as the identity. Both lookups are
// tried so the client never has to say which one it is sending.
func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByUsername(ctx, req.Identity)
	if errors.Is(err, auth.ErrUserNotFound) {
		user, err = repo.Users.GetByEmail(ctx, req.Identity)
	}
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginUserResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Password mismatch on login")
		return auth.LoginUserResponse{}, auth.ErrInvalidCredentials
	}

	claims := map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}

	accessToken, _, err := jwtPkg.Sign(claims, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginUserResponse{}, err
	}

	if err := s.sessions.StartSession(ctx, user.ID, redisPkg.IdleTimeout); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to start session")
		return auth.LoginUserResponse{}, err
	}

	return auth.LoginUserResponse{
		AccessToken:      accessToken,
		ExpiresInMinutes: accessTokenTTL.Minutes(),
	}, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.sessions.EndSession(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to end session")
		return err
	}

	return nil
}

// isStrongPassword requires at least one uppercase letter, one lowercase
// letter and one digit.
func isStrongPassword(password string) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
