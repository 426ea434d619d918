// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto reads and writes the encrypted form of the structured
// server config file.
//
// The editor extension stores the file as base64(iv ‖ tag ‖ ciphertext)
// produced by AES-256-GCM with a 16-byte IV. The key is either supplied as
// 64 hex characters or derived with scrypt from a secret phrase; see
// [DeriveKey].
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/config_cipher_mock.go -package=mock

// ConfigCipher seals and opens config file contents.
type ConfigCipher interface {
	// Encrypt seals plaintext and returns the base64 text stored on disk.
	Encrypt(plaintext []byte) (string, error)

	// Decrypt opens the base64 text produced by Encrypt. Surrounding
	// whitespace is ignored. Returns an error if the text is not base64, is
	// too short, or fails authentication (wrong key or tampered data).
	Decrypt(encoded string) ([]byte, error)
}
