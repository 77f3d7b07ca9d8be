package account

import "errors"

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrEmailAlreadyTaken = errors.New("email already registered")
)
