// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package patcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProbeFile(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "probe.py")
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	return path
}

func TestFixTimeouts_RewritesEveryCall(t *testing.T) {
	src := `import socket, urllib.request, requests
sock = socket.create_connection(("localhost", 51234), timeout=1.0)
requests.post(url, json=data, timeout=1.0)
resp = urllib.request.urlopen(req, timeout = 1.0)
`
	want := `import socket, urllib.request, requests
sock = socket.create_connection(("localhost", 51234), timeout=5.0)
requests.post(url, json=data, timeout=5.0)
resp = urllib.request.urlopen(req, timeout = 5.0)
`
	path := writeProbeFile(t, src, 0o644)

	n, err := New(nil).FixTimeouts(path, DefaultFrom, DefaultTo)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestFixTimeouts_AdjacentMatches(t *testing.T) {
	path := writeProbeFile(t, "f(timeout=1.0,timeout=1.0)", 0o644)

	n, err := New(nil).FixTimeouts(path, "1.0", "2.5")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, _ := os.ReadFile(path)
	assert.Equal(t, "f(timeout=2.5,timeout=2.5)", string(got))
}

func TestFixTimeouts_EndOfFile(t *testing.T) {
	path := writeProbeFile(t, "timeout=1.0", 0o644)

	n, err := New(nil).FixTimeouts(path, "1.0", "5.0")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, _ := os.ReadFile(path)
	assert.Equal(t, "timeout=5.0", string(got))
}

// TestFixTimeouts_IgnoresNearMisses verifies that only exact values on a
// timeout keyword are rewritten.
func TestFixTimeouts_IgnoresNearMisses(t *testing.T) {
	src := `a(timeout=1.05)
b(read_timeout=1.0)
c(timeout=11.0)
d(retries=1.0)
`
	path := writeProbeFile(t, src, 0o644)
	before, err := os.Stat(path)
	require.NoError(t, err)

	n, err := New(nil).FixTimeouts(path, "1.0", "5.0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, _ := os.ReadFile(path)
	assert.Equal(t, src, string(got))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestFixTimeouts_IntegerFromDoesNotMatchDecimal(t *testing.T) {
	path := writeProbeFile(t, "x(timeout=5.0)\ny(timeout=5)\n", 0o644)

	n, err := New(nil).FixTimeouts(path, "5", "10")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, _ := os.ReadFile(path)
	assert.Equal(t, "x(timeout=5.0)\ny(timeout=10)\n", string(got))
}

func TestFixTimeouts_SecondRunIsNoop(t *testing.T) {
	path := writeProbeFile(t, "urlopen(req, timeout=1.0)\n", 0o644)
	p := New(nil)

	n, err := p.FixTimeouts(path, DefaultFrom, DefaultTo)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = p.FixTimeouts(path, DefaultFrom, DefaultTo)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestFixTimeouts_PreservesMode(t *testing.T) {
	path := writeProbeFile(t, "timeout=1.0\n", 0o600)
	// make the rewrite observable if it recreated the file
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	_, err := New(nil).FixTimeouts(path, DefaultFrom, DefaultTo)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	assert.True(t, info.ModTime().After(old))
}

func TestFixTimeouts_FileNotFound(t *testing.T) {
	_, err := New(nil).FixTimeouts(filepath.Join(t.TempDir(), "missing.py"), DefaultFrom, DefaultTo)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFixTimeouts_InvalidNumbers(t *testing.T) {
	path := writeProbeFile(t, "timeout=1.0\n", 0o644)

	tests := []struct {
		name     string
		from, to string
	}{
		{name: "from", from: "one", to: "5.0"},
		{name: "to", from: "1.0", to: "five"},
		{name: "empty to", from: "1.0", to: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil).FixTimeouts(path, tt.from, tt.to)
			assert.ErrorIs(t, err, ErrInvalidNumber)
		})
	}

	got, _ := os.ReadFile(path)
	assert.Equal(t, "timeout=1.0\n", string(got))
}
