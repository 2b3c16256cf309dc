package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyUsername       = errors.New("username must not be empty")
	ErrEmptyPassword       = errors.New("password must not be empty")

	ErrRegisterOnServer = errors.New("registration rejected by server")
	ErrLoginOnServer    = errors.New("login rejected by server")

	ErrNoSession = errors.New("no active session")

	ErrUsernameTaken = errors.New("username already taken")
	ErrBadLogin      = errors.New("wrong username or password")
	ErrNotFound      = errors.New("record not found")
)
