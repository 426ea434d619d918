// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ProbeLogFileName is the base name of the probe log inside the user's home
// directory.
const ProbeLogFileName = ".roo_probe_debug.log"

// ErrProbeLogNotFound is returned by [Tail] when the probe log does not exist.
var ErrProbeLogNotFound = errors.New("probe log not found")

// ProbeLog is an io.Writer over the probe log file. Every Write opens the
// file in append mode, writes and closes it again, so the file is never
// truncated and no handle outlives a single log line.
type ProbeLog struct {
	path string
}

// NewProbeLog returns a ProbeLog appending to path.
func NewProbeLog(path string) *ProbeLog {
	return &ProbeLog{path: path}
}

// Path returns the file the log appends to.
func (p *ProbeLog) Path() string {
	return p.path
}

// Write implements io.Writer.
func (p *ProbeLog) Write(b []byte) (n int, err error) {
	f, err := os.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open probe log: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close probe log: %w", closeErr)
		}
	}()

	return f.Write(b)
}

// NewProbeLogger returns a *Logger whose timestamped, human-readable lines
// are appended to the probe log at path.
func NewProbeLogger(path string) *Logger {
	out := zerolog.ConsoleWriter{
		Out:        NewProbeLog(path),
		NoColor:    true,
		TimeFormat: TimeFormat,
	}

	return &Logger{zerolog.New(out).With().Timestamp().Logger()}
}

// DefaultProbeLogPath returns ~/.roo_probe_debug.log, or the same name in the
// temp directory when the home directory cannot be determined.
func DefaultProbeLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), ProbeLogFileName)
	}
	return filepath.Join(home, ProbeLogFileName)
}

// Tail returns the last n non-empty lines of the log at path together with
// the total number of non-empty lines. n <= 0 returns every line.
func Tail(path string, n int) ([]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrProbeLogNotFound, path)
		}
		return nil, 0, fmt.Errorf("open probe log: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read probe log: %w", err)
	}

	total := len(lines)
	if n > 0 && total > n {
		lines = lines[total-n:]
	}
	return lines, total, nil
}
