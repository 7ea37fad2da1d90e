package auth

import (
	"ExpenseTracker/pkg/response"
	"net/http"
)

var (
	ErrUsernameAlreadyExists = response.NewError(http.StatusConflict, "username already exists")
	ErrEmailAlreadyExists    = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidCredentials    = response.NewError(http.StatusBadRequest, "username/email or password is wrong")
	ErrUserNotFound          = response.NewError(http.StatusNotFound, "user not found")
	ErrPasswordSame          = response.NewError(http.StatusBadRequest, "password same as before")
	ErrWeakPassword          = response.NewError(http.StatusBadRequest, "password must contain an uppercase letter, a lowercase letter and a digit")
	ErrSessionExpired        = response.NewError(http.StatusUnauthorized, "session expired")
	ErrEmailAlreadyInUse     = response.NewError(http.StatusConflict, "email already in use by another user")
)
