package util

import "errors"

var (
	ErrUserNotFound = errors.New("User not found")
)
