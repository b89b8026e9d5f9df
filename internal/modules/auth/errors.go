package auth

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotLoggedIn = errors.New("not logged in")
)
