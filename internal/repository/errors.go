package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrEmailExists    = errors.New("email is already whitelisted")
	ErrNotWhitelisted = errors.New("email is not whitelisted")
)
