// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package patcher rewrites hard-coded timeouts inside injected probe code.
//
// Probes generated with a short timeout (timeout=1.0) give up before a busy
// companion server answers. [Patcher.FixTimeouts] raises every such value in
// a source file in place.
package patcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/probe-doctor/internal/logger"
)

const (
	DefaultFrom = "1.0"
	DefaultTo   = "5.0"
)

// Patcher rewrites timeout keyword arguments in files.
type Patcher struct {
	logger *logger.Logger
}

// New returns a Patcher that logs through log. A nil log discards output.
func New(log *logger.Logger) *Patcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Patcher{logger: log}
}

// FixTimeouts replaces every "timeout=<from>" in the file at path with
// "timeout=<to>" and returns the number of replacements. Spacing around "="
// is preserved. The file is left untouched when nothing matches.
func (p *Patcher) FixTimeouts(path, from, to string) (int, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if err := checkNumber(from); err != nil {
		return 0, err
	}
	if err := checkNumber(to); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	re := timeoutPattern(from)
	count := len(re.FindAllIndex(content, -1))
	if count == 0 {
		p.logger.Info().Str("path", path).Str("from", from).Msg("no timeouts to fix")
		return 0, nil
	}

	patched := re.ReplaceAll(content, []byte("${1}"+to+"${2}"))
	if err = os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	p.logger.Info().
		Str("path", path).
		Str("from", from).
		Str("to", to).
		Int("count", count).
		Msg("fixed probe timeouts")
	return count, nil
}

// timeoutPattern matches a timeout keyword assigned exactly from. The
// trailing group keeps "timeout=1.05" from matching "1.0" and "timeout=5.0"
// from matching "5".
func timeoutPattern(from string) *regexp.Regexp {
	return regexp.MustCompile(`(\btimeout\s*=\s*)` + regexp.QuoteMeta(from) + `([^\w.]|$)`)
}

func checkNumber(v string) error {
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, v)
	}
	return nil
}
