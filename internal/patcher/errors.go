package patcher

import "errors"

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidNumber = errors.New("timeout value is not a number")
)
