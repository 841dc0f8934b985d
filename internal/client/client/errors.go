package client

import "errors"

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrDuplicateAccount   = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
