// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/probe-doctor/internal/logger"
)

// Marker names. Presence alone marks a workspace root; contents are never read.
const (
	MarkerDebugConfig = ".ai_debug_config"
	MarkerDebugPort   = ".debug_port"
	MarkerGit         = ".git"
	MarkerRoo         = ".roo"
)

// Markers is the fixed marker set checked in every directory.
var Markers = []string{MarkerDebugConfig, MarkerDebugPort, MarkerGit, MarkerRoo}

// Finder walks up the directory tree looking for [Markers].
type Finder struct {
	logger *logger.Logger
}

// NewFinder returns a Finder that reports each step at debug level.
func NewFinder(log *logger.Logger) *Finder {
	if log == nil {
		log = logger.Nop()
	}
	return &Finder{logger: log}
}

// FindRoot returns the nearest directory, starting at start itself, that
// contains a marker. An empty start means the current working directory.
// The walk stops at the filesystem root and returns [ErrRootNotFound].
func (f *Finder) FindRoot(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start path %q: %w", start, err)
	}

	f.logger.Debug().Str("start", current).Msg("searching for workspace root")

	for {
		if marker, ok := HasMarker(current); ok {
			f.logger.Debug().Str("marker", filepath.Join(current, marker)).Msg("found workspace marker")
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	f.logger.Warn().Str("start", start).Msg("workspace root not found")
	return "", ErrRootNotFound
}

// Resolve returns override as an absolute path when it is non-blank, and
// otherwise falls back to [Finder.FindRoot] from start.
func (f *Finder) Resolve(override, start string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		root, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve workspace override %q: %w", override, err)
		}
		f.logger.Debug().Str("root", root).Msg("using workspace override")
		return root, nil
	}

	return f.FindRoot(start)
}

// HasMarker reports the first marker present in dir.
func HasMarker(dir string) (string, bool) {
	for _, marker := range Markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return marker, true
		}
	}
	return "", false
}
