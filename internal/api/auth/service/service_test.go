package authService

import (
	"context"
	"io"
	"testing"
	"time"

	"ExpenseTracker/internal/api/auth"
	authRepository "ExpenseTracker/internal/api/auth/repository"
	"ExpenseTracker/internal/entity"
	"ExpenseTracker/pkg/bcrypt"
	"ExpenseTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byUsername map[string]entity.User
	byEmail    map[string]entity.User
	byID       map[string]entity.User
	created    []entity.User
	passwords  map[string]string
	deleted    []string
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byUsername: map[string]entity.User{},
		byEmail:    map[string]entity.User{},
		byID:       map[string]entity.User{},
		passwords:  map[string]string{},
	}
}

func (f *fakeUsers) add(user entity.User) {
	f.byUsername[user.Username] = user
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
}

func (f *fakeUsers) CreateUser(ctx context.Context, user entity.User) error {
	f.created = append(f.created, user)
	f.add(user)
	return nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) UpdateUser(ctx context.Context, user entity.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return auth.ErrUserNotFound
	}
	f.add(user)
	return nil
}

func (f *fakeUsers) UpdateUserPassword(ctx context.Context, id string, password string) error {
	if _, ok := f.byID[id]; !ok {
		return auth.ErrUserNotFound
	}
	f.passwords[id] = password
	return nil
}

func (f *fakeUsers) DeleteUser(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return auth.ErrUserNotFound
	}
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeRepository struct {
	users *fakeUsers
}

func (f *fakeRepository) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeSessions struct {
	started []string
	ended   []string
}

func (f *fakeSessions) StartSession(ctx context.Context, userID string, idle time.Duration) error {
	f.started = append(f.started, userID)
	return nil
}

func (f *fakeSessions) RefreshSession(ctx context.Context, userID string, idle time.Duration) (bool, error) {
	for _, id := range f.started {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSessions) EndSession(ctx context.Context, userID string) error {
	f.ended = append(f.ended, userID)
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(t *testing.T) (*fakeUsers, *fakeSessions, IAuthService) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	users := newFakeUsers()
	sessions := &fakeSessions{}
	svc := New(quietLogger(), &fakeRepository{users: users}, sessions, bcrypt.NewWithCost(4), utils.New())

	return users, sessions, svc
}

func registeredUser(t *testing.T, users *fakeUsers, svc IAuthService) entity.User {
	t.Helper()

	err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
		FullName: "Alice Doe",
	})
	require.NoError(t, err)
	require.Len(t, users.created, 1)

	return users.created[0]
}

func TestRegisterUser(t *testing.T) {
	users, _, svc := newTestService(t)

	user := registeredUser(t, users, svc)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "Sup3rSecret", user.Password, "password must be stored hashed")
}

func TestRegisterUserRejectsWeakPassword(t *testing.T) {
	_, _, svc := newTestService(t)

	err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "alllowercase",
		FullName: "Bob Doe",
	})
	assert.ErrorIs(t, err, auth.ErrWeakPassword)
}

func TestRegisterUserRejectsDuplicates(t *testing.T) {
	users, _, svc := newTestService(t)
	registeredUser(t, users, svc)

	err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "Sup3rSecret",
		FullName: "Other",
	})
	assert.ErrorIs(t, err, auth.ErrUsernameAlreadyExists)

	err = svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
		FullName: "Other",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	users, sessions, svc := newTestService(t)
	user := registeredUser(t, users, svc)

	res, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Identity: "alice",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, 60.0, res.ExpiresInMinutes)
	assert.Contains(t, sessions.started, user.ID)

	_, err = svc.Login(context.Background(), auth.LoginUserRequest{
		Identity: "alice@example.com",
		Password: "Sup3rSecret",
	})
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users, _, svc := newTestService(t)
	registeredUser(t, users, svc)

	_, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Identity: "alice",
		Password: "WrongPassw0rd",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginUserRequest{
		Identity: "nobody",
		Password: "Sup3rSecret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogoutEndsSession(t *testing.T) {
	users, sessions, svc := newTestService(t)
	user := registeredUser(t, users, svc)

	require.NoError(t, svc.Logout(context.Background(), user.ID))
	assert.Contains(t, sessions.ended, user.ID)
}

func TestChangePassword(t *testing.T) {
	users, _, svc := newTestService(t)
	user := registeredUser(t, users, svc)

	err := svc.ChangePassword(context.Background(), user.ID, auth.ChangePasswordRequest{
		OldPassword: "Sup3rSecret",
		NewPassword: "N3wSecret",
	})
	require.NoError(t, err)
	assert.Contains(t, users.passwords, user.ID)
}

func TestChangePasswordRejectsSameAndWeak(t *testing.T) {
	users, _, svc := newTestService(t)
	user := registeredUser(t, users, svc)

	err := svc.ChangePassword(context.Background(), user.ID, auth.ChangePasswordRequest{
		OldPassword: "Sup3rSecret",
		NewPassword: "Sup3rSecret",
	})
	assert.ErrorIs(t, err, auth.ErrPasswordSame)

	err = svc.ChangePassword(context.Background(), user.ID, auth.ChangePasswordRequest{
		OldPassword: "Sup3rSecret",
		NewPassword: "weakpassword",
	})
	assert.ErrorIs(t, err, auth.ErrWeakPassword)
}

func TestChangePasswordRejectsWrongOldPassword(t *testing.T) {
	users, _, svc := newTestService(t)
	user := registeredUser(t, users, svc)

	err := svc.ChangePassword(context.Background(), user.ID, auth.ChangePasswordRequest{
		OldPassword: "Nope123",
		NewPassword: "N3wSecret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	users, _, svc := newTestService(t)
	user := registeredUser(t, users, svc)

	other := entity.User{ID: "u2", Username: "carol", Email: "carol@example.com"}
	users.add(other)

	err := svc.UpdateProfile(context.Background(), user.ID, auth.UpdateUserRequest{
		Email: "carol@example.com",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyInUse)
}

func TestDeleteUserEndsSession(t *testing.T) {
	users, sessions, svc := newTestService(t)
	user := registeredUser(t, users, svc)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))
	assert.Contains(t, users.deleted, user.ID)
	assert.Contains(t, sessions.ended, user.ID)
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, isStrongPassword("Abc123"))
	assert.False(t, isStrongPassword("abc123"))
	assert.False(t, isStrongPassword("ABC123"))
	assert.False(t, isStrongPassword("Abcdef"))
	assert.False(t, isStrongPassword(""))
}
