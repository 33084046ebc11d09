package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameExists        = errors.New("username already registered")
	ErrEmailExists           = errors.New("email already registered")
	ErrInvalidEmailFormat    = errors.New("invalid email format")
	ErrInvalidPasswordLength = errors.New("password must be at least 8 characters")
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrGuruAccessRequired    = errors.New("teacher access required")
	ErrSiswaAccessRequired   = errors.New("student access required")
	ErrOAuthProviderIDExists = errors.New("oauth provider id already registered")
)
