// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/probe-doctor/internal/crypto"
	"github.com/MKhiriev/probe-doctor/internal/logger"
)

// Strategy names reported in [Resolution.Source].
const (
	sourceStructured = "structured-config"
	sourcePortFile   = "port-file"
	sourceDefault    = "default"
)

// File locations relative to the workspace root. The .rootrace directory is
// preferred; the dotfiles at the root are the legacy layout.
const (
	StateDir             = ".rootrace"
	ConfigFileName       = "ai_debug_config"
	PortFileName         = "debug_port"
	LegacyConfigFileName = ".ai_debug_config"
	LegacyPortFileName   = ".debug_port"
	maxPort              = 65535
)

// ConfigPath returns the structured config file to read under root.
func ConfigPath(root string) string {
	return pickPath(filepath.Join(root, StateDir, ConfigFileName), filepath.Join(root, LegacyConfigFileName))
}

// PortPath returns the port file to read under root.
func PortPath(root string) string {
	return pickPath(filepath.Join(root, StateDir, PortFileName), filepath.Join(root, LegacyPortFileName))
}

func pickPath(preferred, legacy string) string {
	if _, err := os.Stat(preferred); err == nil {
		return preferred
	}
	return legacy
}

// ── structured config ────────────────────────────────────────────────────────

type structuredConfigStrategy struct {
	cipher crypto.ConfigCipher
	logger *logger.Logger
}

// NewStructuredConfigStrategy reads the structured config file. Content that
// is not JSON is decrypted with cipher when one is given; otherwise it is
// treated as unusable.
func NewStructuredConfigStrategy(cipher crypto.ConfigCipher, log *logger.Logger) Strategy {
	if log == nil {
		log = logger.Nop()
	}
	return &structuredConfigStrategy{cipher: cipher, logger: log}
}

func (s *structuredConfigStrategy) Name() string { return sourceStructured }

func (s *structuredConfigStrategy) Resolve(root string) (string, bool) {
	path := ConfigPath(root)

	content, ok := readFile(path, s.logger)
	if !ok {
		return "", false
	}
	content = bytes.TrimSpace(content)
	s.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("read structured config")

	if !json.Valid(content) {
		if s.cipher == nil {
			s.logger.Warn().Str("path", path).Msg("config is not JSON (probably encrypted), no key available")
			return "", false
		}

		plain, err := s.cipher.Decrypt(string(content))
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("config is not JSON and could not be decrypted")
			return "", false
		}
		content = plain
	}

	url, ok := urlFromJSON(content)
	if !ok {
		s.logger.Warn().Str("path", path).Msg("config has no usable \"url\" field")
		return "", false
	}
	return url, true
}

// urlFromJSON reads only the "url" member, so other members of any type do
// not make the file unusable.
func urlFromJSON(content []byte) (string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(content, &obj); err != nil {
		return "", false
	}

	raw, ok := obj["url"]
	if !ok {
		return "", false
	}

	var url string
	if err := json.Unmarshal(raw, &url); err != nil {
		return "", false
	}
	url = strings.TrimSpace(url)
	return url, url != ""
}

// ── port file ────────────────────────────────────────────────────────────────

type portFileStrategy struct {
	logger *logger.Logger
}

// NewPortFileStrategy reads a base-10 port from the port file and returns
// http://localhost:<port>/. Ports outside 1..65535 are rejected.
func NewPortFileStrategy(log *logger.Logger) Strategy {
	if log == nil {
		log = logger.Nop()
	}
	return &portFileStrategy{logger: log}
}

func (s *portFileStrategy) Name() string { return sourcePortFile }

func (s *portFileStrategy) Resolve(root string) (string, bool) {
	path := PortPath(root)

	content, ok := readFile(path, s.logger)
	if !ok {
		return "", false
	}

	port, err := ParsePort(string(content))
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("unusable port file")
		return "", false
	}

	s.logger.Debug().Str("path", path).Int("port", port).Msg("read port file")
	return localURL(port), true
}

// ParsePort parses trimmed content as a port number in 1..65535.
func ParsePort(content string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil {
		return 0, err
	}
	if port < 1 || port > maxPort {
		return 0, strconv.ErrRange
	}
	return port, nil
}

// ── default ──────────────────────────────────────────────────────────────────

type defaultPortStrategy struct {
	port int
}

// NewDefaultPortStrategy always answers http://localhost:<port>/. Ports
// outside 1..65535 are replaced with [DefaultPort].
func NewDefaultPortStrategy(port int) Strategy {
	if port < 1 || port > maxPort {
		port = DefaultPort
	}
	return &defaultPortStrategy{port: port}
}

func (s *defaultPortStrategy) Name() string { return sourceDefault }

func (s *defaultPortStrategy) Resolve(string) (string, bool) {
	return localURL(s.port), true
}

// readFile reads path, logging why it could not be used.
func readFile(path string, log *logger.Logger) ([]byte, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("file not found")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("cannot read file")
		}
		return nil, false
	}
	return content, true
}
