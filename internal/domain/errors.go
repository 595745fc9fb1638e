package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateUser = errors.New("user already exists")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidInput  = errors.New("invalid input")
)
