package service

import "errors"

var (
	ErrWorkspaceNotResolved = errors.New("workspace root could not be resolved")
	ErrInvalidCryptoConfig  = errors.New("invalid crypto configs")
)
