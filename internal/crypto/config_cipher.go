// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	// KeyLength is the AES-256 key size in bytes.
	KeyLength = 32
	ivLength  = 16
	tagLength = 16

	// DefaultSecretPhrase is the phrase the extension falls back to when no
	// key or phrase is configured.
	DefaultSecretPhrase = "roo-trace-default-secret"

	scryptSalt = "salt"
	scryptN    = 16384
	scryptR    = 8
	scryptP    = 1
)

// aesGCMCipher is the private implementation of [ConfigCipher].
type aesGCMCipher struct {
	key []byte
}

// NewConfigCipher returns a [ConfigCipher] for a 32-byte key.
func NewConfigCipher(key []byte) (ConfigCipher, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), KeyLength)
	}
	k := make([]byte, KeyLength)
	copy(k, key)
	return &aesGCMCipher{key: k}, nil
}

// DeriveKey returns the config key. A non-empty hexKey must decode to
// exactly 32 bytes and is used as is. Otherwise the key is
// scrypt(phrase, "salt", N=16384, r=8, p=1), with [DefaultSecretPhrase] used
// for a blank phrase.
func DeriveKey(hexKey, phrase string) ([]byte, error) {
	if hexKey = strings.TrimSpace(hexKey); hexKey != "" {
		key, err := hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("decode hex key: %w", err)
		}
		if len(key) != KeyLength {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), KeyLength)
		}
		return key, nil
	}

	if phrase == "" {
		phrase = DefaultSecretPhrase
	}
	key, err := scrypt.Key([]byte(phrase), []byte(scryptSalt), scryptN, scryptR, scryptP, KeyLength)
	if err != nil {
		return nil, fmt.Errorf("derive scrypt key: %w", err)
	}
	return key, nil
}

// Encrypt implements [ConfigCipher]. The on-disk layout is
// base64(iv[16] ‖ tag[16] ‖ ciphertext).
func (c *aesGCMCipher) Encrypt(plaintext []byte) (string, error) {
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	// Seal returns ciphertext ‖ tag; the file stores the tag first.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	ct, tag := sealed[:len(sealed)-tagLength], sealed[len(sealed)-tagLength:]

	blob := make([]byte, 0, ivLength+tagLength+len(ct))
	blob = append(blob, iv...)
	blob = append(blob, tag...)
	blob = append(blob, ct...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [ConfigCipher].
func (c *aesGCMCipher) Decrypt(encoded string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(blob) < ivLength+tagLength {
		return nil, ErrCiphertextTooShort
	}

	gcm, err := c.gcm()
	if err != nil {
		return nil, err
	}

	iv := blob[:ivLength]
	tag := blob[ivLength : ivLength+tagLength]
	ct := blob[ivLength+tagLength:]

	sealed := make([]byte, 0, len(ct)+tagLength)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed config: %w", err)
	}
	return plaintext, nil
}

func (c *aesGCMCipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("create aes cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
