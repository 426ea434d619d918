package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/probe-doctor/internal/adapter"
	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/mock"
	"github.com/MKhiriev/probe-doctor/internal/resolver"
	"github.com/MKhiriev/probe-doctor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	root     string
	probeLog string
	prober   *mock.MockProber
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

// newTestEnv prepares a workspace whose port file points at port and clears
// environment variables that would override the flags.
func newTestEnv(t *testing.T, port string) *testEnv {
	t.Helper()
	for _, name := range []string{"ROO_TRACE_WORKSPACE", "ROO_TRACE_WORKSPACE_ROOT", "PROBE_LOG_PATH", "CONFIG", "LOG_LEVEL"} {
		t.Setenv(name, "")
	}

	root := t.TempDir()
	if port != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, resolver.LegacyPortFileName), []byte(port), 0o644))
	}

	return &testEnv{
		root:     root,
		probeLog: filepath.Join(t.TempDir(), "probe.log"),
		prober:   mock.NewMockProber(gomock.NewController(t)),
		stdout:   new(bytes.Buffer),
		stderr:   new(bytes.Buffer),
	}
}

func (e *testEnv) newApp() *app {
	a := newApp(models.NewAppBuildInfo("1.2.3", "2026-10-19", "abc1234"), e.stdout, e.stderr)
	a.prober = e.prober
	return a
}

func (e *testEnv) execute(ctx context.Context, args ...string) error {
	cmd := newRootCmd(e.newApp())
	cmd.SetArgs(append([]string{"--workspace", e.root, "--probe-log", e.probeLog}, args...))
	return cmd.ExecuteContext(ctx)
}

func (e *testEnv) run(args ...string) error {
	return e.execute(context.Background(), args...)
}

// ── check ────────────────────────────────────────────────────────────────────

func TestCheck_Passed(t *testing.T) {
	env := newTestEnv(t, "40300")
	env.prober.EXPECT().
		Check(gomock.Any(), "http://localhost:40300/", gomock.Any()).
		Return(adapter.Success(200, `{"status":"success","message":"Data received"}`))

	require.NoError(t, env.run("check"))

	out := env.stdout.String()
	assert.Contains(t, out, "not found, probes have not run yet")
	assert.Contains(t, out, "TEST PASSED")
	assert.Contains(t, out, "http://localhost:40300/")
	assert.Contains(t, out, "port-file")
}

func TestCheck_Failed(t *testing.T) {
	env := newTestEnv(t, "40301")
	env.prober.EXPECT().
		Check(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(adapter.ConnectionRefused("connect to localhost:40301: connection refused"))

	err := env.run("check")

	assert.ErrorIs(t, err, adapter.ErrProbeFailed)
	assert.Contains(t, env.stdout.String(), "TEST FAILED")
	assert.Contains(t, env.stdout.String(), "stale .debug_port")
}

func TestCheck_PrintsProbeLogTail(t *testing.T) {
	env := newTestEnv(t, "40302")
	require.NoError(t, os.WriteFile(env.probeLog, []byte("one\ntwo\nthree\n"), 0o644))
	env.prober.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.Success(200, "ok"))

	require.NoError(t, env.run("--tail", "2", "check"))

	out := env.stdout.String()
	assert.Contains(t, out, "lines: 3")
	assert.Contains(t, out, "Last 2 lines:")
	assert.Contains(t, out, "  two\n  three\n")
	assert.NotContains(t, out, "  one\n")
}

func TestCheck_InvalidConfig(t *testing.T) {
	env := newTestEnv(t, "")

	err := env.run("--log-level", "loud", "check")

	assert.ErrorIs(t, err, config.ErrInvalidLogConfigs)
}

// ── resolve ──────────────────────────────────────────────────────────────────

func TestResolve(t *testing.T) {
	env := newTestEnv(t, "40303")

	require.NoError(t, env.run("resolve"))

	out := env.stdout.String()
	assert.Contains(t, out, "Workspace root: "+env.root)
	assert.Contains(t, out, "Source:         port-file")
	assert.Contains(t, out, "Server URL:     http://localhost:40303/")
}

func TestResolve_URLOnlyFallsBackToDefaultPort(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.run("--default-port", "40304", "resolve", "--url-only"))

	assert.Equal(t, "http://localhost:40304/\n", env.stdout.String())
}

// ── send ─────────────────────────────────────────────────────────────────────

func TestSend_Success(t *testing.T) {
	env := newTestEnv(t, "40305")
	env.prober.EXPECT().
		Send(gomock.Any(), "http://localhost:40305/", gomock.Any()).
		Return(adapter.Success(200, "ok"))

	require.NoError(t, env.run("--hypothesis", "H9", "send"))

	assert.Contains(t, env.stdout.String(), "SUCCESS: status 200, body: ok")

	lines, _, err := logger.Tail(env.probeLog, 0)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Probe EXECUTING: H9")
}

func TestSend_Failure(t *testing.T) {
	env := newTestEnv(t, "40306")
	env.prober.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.BadStatus(400, "Invalid JSON"))

	err := env.run("send")

	assert.ErrorIs(t, err, adapter.ErrProbeFailed)
	assert.Contains(t, env.stdout.String(), "ERROR: server returned status 400: Invalid JSON")
	assert.Contains(t, env.stdout.String(), env.probeLog)
}

// ── logs ─────────────────────────────────────────────────────────────────────

func TestLogs(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, os.WriteFile(env.probeLog, []byte("first\nsecond\n"), 0o644))

	require.NoError(t, env.run("logs"))

	assert.Contains(t, env.stdout.String(), "Last 2 lines:")
	assert.Contains(t, env.stdout.String(), "  first\n  second\n")
}

func TestLogs_Missing(t *testing.T) {
	env := newTestEnv(t, "")

	err := env.run("logs")

	assert.ErrorIs(t, err, logger.ErrProbeLogNotFound)
}

// ── fix-timeouts ─────────────────────────────────────────────────────────────

func TestFixTimeouts(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		content string
		want    string
		output  string
	}{
		{
			name:    "defaults",
			content: "urlopen(req, timeout=1.0)\n",
			want:    "urlopen(req, timeout=5.0)\n",
			output:  "Replaced 1 timeout(s) 1.0 -> 5.0",
		},
		{
			name:    "custom values",
			args:    []string{"--from", "2.0", "--to", "7.5"},
			content: "a(timeout=2.0)\nb(timeout=2.0)\n",
			want:    "a(timeout=7.5)\nb(timeout=7.5)\n",
			output:  "Replaced 2 timeout(s) 2.0 -> 7.5",
		},
		{
			name:    "nothing to do",
			content: "a(timeout=3.0)\n",
			want:    "a(timeout=3.0)\n",
			output:  "No timeout=1.0 found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")
			path := filepath.Join(t.TempDir(), "probe.py")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			require.NoError(t, env.run(append([]string{"fix-timeouts", path}, tt.args...)...))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.Contains(t, env.stdout.String(), tt.output)
		})
	}
}

func TestFixTimeouts_RequiresFile(t *testing.T) {
	env := newTestEnv(t, "")
	assert.Error(t, env.run("fix-timeouts"))
}

// ── serve ────────────────────────────────────────────────────────────────────

func TestServe_AdvertisesEndpointUntilStopped(t *testing.T) {
	env := newTestEnv(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- env.execute(ctx, "--address", "127.0.0.1:0", "--write-config", "serve")
	}()

	portFile := filepath.Join(env.root, resolver.LegacyPortFileName)
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(portFile)
		return err == nil && strings.TrimSpace(string(data)) != ""
	}, 5*time.Second, 10*time.Millisecond)
	assert.FileExists(t, filepath.Join(env.root, resolver.LegacyConfigFileName))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop")
	}
	assert.NoFileExists(t, portFile)
}

// ── version ──────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.run("--version"))

	assert.Contains(t, env.stdout.String(), "Build version: 1.2.3")
	assert.Contains(t, env.stdout.String(), "Build commit: abc1234")
}
