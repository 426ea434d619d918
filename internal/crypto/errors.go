package crypto

import "errors"

var (
	// ErrInvalidKey is returned when a key is not exactly 32 bytes.
	ErrInvalidKey = errors.New("invalid encryption key length")

	// ErrCiphertextTooShort is returned when the decoded blob cannot hold the
	// IV and authentication tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)
