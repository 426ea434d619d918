// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for
// probe-doctor. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Workspace controls where the workspace root search starts and lets the
	// caller pin the root explicitly.
	Workspace Workspace

	// Probe holds the connectivity probe settings: fallback port, timeouts
	// and the payload fields sent to the companion server.
	Probe Probe `envPrefix:"PROBE_"`

	// Log holds console log level and the probe log location.
	Log Log

	// Crypto holds the key material used to open an encrypted structured
	// server config.
	Crypto Crypto `envPrefix:"ROO_TRACE_"`

	// Server holds the stand-in companion server settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Workspace holds workspace discovery settings.
type Workspace struct {
	// Root pins the workspace root and disables the marker search.
	// Env: ROO_TRACE_WORKSPACE
	Root string `env:"ROO_TRACE_WORKSPACE"`

	// RootAlias is the legacy spelling of Root, consulted when Root is empty.
	// Env: ROO_TRACE_WORKSPACE_ROOT
	RootAlias string `env:"ROO_TRACE_WORKSPACE_ROOT"`

	// StartDir is the directory the marker search starts from. Empty means
	// the current working directory.
	// Env: PROBE_START_DIR
	StartDir string `env:"PROBE_START_DIR"`
}

// Override returns the explicitly configured workspace root, or "".
func (w Workspace) Override() string {
	if root := strings.TrimSpace(w.Root); root != "" {
		return root
	}
	return strings.TrimSpace(w.RootAlias)
}

// Probe holds the settings of the connectivity probe.
type Probe struct {
	// DefaultPort is used to build http://localhost:<port>/ when no config
	// source resolves.
	// Env: PROBE_DEFAULT_PORT
	DefaultPort int `env:"DEFAULT_PORT"`

	// ConnectTimeout bounds the TCP connect test.
	// Env: PROBE_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// RequestTimeout bounds the HTTP POST.
	// Env: PROBE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HypothesisID is sent as "hypothesisId".
	// Env: PROBE_HYPOTHESIS_ID
	HypothesisID string `env:"HYPOTHESIS_ID"`

	// Message is sent as "message".
	// Env: PROBE_MESSAGE
	Message string `env:"MESSAGE"`
}

// Log holds logging settings.
type Log struct {
	// Level is the console log level (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`

	// ProbeLogPath is the append-only probe log shared with injected probes.
	// Env: PROBE_LOG_PATH
	ProbeLogPath string `env:"PROBE_LOG_PATH"`

	// TailLines is how many probe log lines the check and logs commands show.
	// Env: PROBE_LOG_TAIL
	TailLines int `env:"PROBE_LOG_TAIL"`
}

// Crypto holds the key material for encrypted structured configs.
type Crypto struct {
	// EncryptionKey is a 64-character hex AES-256 key.
	// Env: ROO_TRACE_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// SecretPhrase derives the key with scrypt when EncryptionKey is empty.
	// Env: ROO_TRACE_SECRET_PHRASE
	SecretPhrase string `env:"SECRET_PHRASE"`
}

// Server holds the stand-in companion server settings.
type Server struct {
	// Address is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// WriteConfig makes the server write .debug_port and .ai_debug_config
	// into the workspace root once it is listening. nil means unset, so an
	// explicit false from an earlier source survives the merge.
	// Env: SERVER_WRITE_CONFIG
	WriteConfig *bool `env:"WRITE_CONFIG"`

	// EncryptConfig writes .ai_debug_config encrypted instead of plain JSON.
	// Env: SERVER_ENCRYPT_CONFIG
	EncryptConfig *bool `env:"ENCRYPT_CONFIG"`
}

// ShouldWriteConfig reports whether the endpoint files are written.
func (s Server) ShouldWriteConfig() bool {
	return s.WriteConfig != nil && *s.WriteConfig
}

// ShouldEncryptConfig reports whether the written config is encrypted.
func (s Server) ShouldEncryptConfig() bool {
	return s.EncryptConfig != nil && *s.EncryptConfig
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Earlier sources take precedence for non-zero fields:
//  1. Command-line flags registered on fs by [RegisterFlags]
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
