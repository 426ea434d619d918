package adapter

import "errors"

var (
	ErrInvalidURL  = errors.New("invalid server url")
	ErrProbeFailed = errors.New("probe failed")
)
