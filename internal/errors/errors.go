package myErrors

import "errors"

var (
	ErrUserNotFound    = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserExists      = errors.New("user already exists")
	ErrKeyNotFound     = errors.New("key not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrMissingKey      = errors.New("either key or key_id must be provided")
)
