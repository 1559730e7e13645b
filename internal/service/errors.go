package service

import "errors"

// Ошибки бизнес-логики. Хэндлеры переводят их в HTTP-статусы.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrForbidden          = errors.New("operation is not allowed for this user")
)
