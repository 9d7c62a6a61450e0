package services

import "errors"

var (
	// ErrNotFound covers both a missing record and a record owned by
	// another user, so callers cannot distinguish the two cases.
	ErrNotFound = errors.New("record not found")

	ErrDuplicate          = errors.New("duplicate record")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
