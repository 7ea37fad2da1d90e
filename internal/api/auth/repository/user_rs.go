package authRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ExpenseTracker/internal/api/auth"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type userDB struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u *userDB) makeUser() entity.User {
	return entity.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user entity.User) error {
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"password":   user.Password,
		"full_name":  user.FullName,
		"created_at": user.CreatedAt,
		"updated_at": user.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository.CreateUser] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository.CreateUser] failed to insert user")
		return err
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	return r.getUser(ctx, queryGetUserByID, map[string]interface{}{"id": id}, "GetByID")
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	return r.getUser(ctx, queryGetUserByUsername, map[string]interface{}{"username": username}, "GetByUsername")
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.getUser(ctx, queryGetUserByEmail, map[string]interface{}{"email": email}, "GetByEmail")
}

func (r *userRepository) getUser(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) (entity.User, error) {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository." + op + "] failed to build query")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	var user userDB
	err = r.q.QueryRowxContext(ctx, query, args...).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository." + op + "] failed to get user")
		return entity.User{}, err
	}

	return user.makeUser(), nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user entity.User) error {
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"email":      user.Email,
		"full_name":  user.FullName,
		"updated_at": user.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository.UpdateUser] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository.UpdateUser] failed to update user")
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, id string, password string) error {
	argsKV := map[string]interface{}{
		"id":         id,
		"password":   password,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUserPassword, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository.UpdateUserPassword] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository.UpdateUserPassword] failed to update password")
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	query, args, err := sqlx.Named(queryDeleteUser, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository.DeleteUser] failed to build query")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("[userRepository.DeleteUser] failed to delete user")
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}
