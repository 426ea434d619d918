package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "random port", addr: NetAddress{Host: "localhost", Port: 0}, expected: "localhost:0"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
		{name: "ipv6", addr: NetAddress{Host: "::1", Port: 80}, expected: "[::1]:80"},
		{name: "any port on all interfaces", addr: NetAddress{set: true}, expected: ":0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:51234", wantHost: "localhost", wantPort: 51234},
		{name: "ipv4", input: "127.0.0.1:8080", wantHost: "127.0.0.1", wantPort: 8080},
		{name: "empty host", input: ":9000", wantHost: "", wantPort: 9000},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:abc", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "hostname not ip", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	fs := newFlagSet(t,
		"-c", "/etc/probe.json",
		"-w", "/ws",
		"--start-dir", "/ws/src",
		"--default-port", "40002",
		"--connect-timeout", "1s",
		"--request-timeout", "4s",
		"--hypothesis", "H3",
		"--message", "from flags",
		"--log-level", "debug",
		"--probe-log", "/tmp/flags.log",
		"--tail", "3",
		"--encryption-key", "beef",
		"--secret-phrase", "flag-phrase",
		"-a", "127.0.0.1:40002",
		"--write-config",
		"--encrypt-config",
	)

	cfg := ParseFlags(fs)

	assert.Equal(t, "/etc/probe.json", cfg.JSONFilePath)
	assert.Equal(t, "/ws", cfg.Workspace.Root)
	assert.Equal(t, "/ws/src", cfg.Workspace.StartDir)
	assert.Equal(t, 40002, cfg.Probe.DefaultPort)
	assert.Equal(t, time.Second, cfg.Probe.ConnectTimeout)
	assert.Equal(t, 4*time.Second, cfg.Probe.RequestTimeout)
	assert.Equal(t, "H3", cfg.Probe.HypothesisID)
	assert.Equal(t, "from flags", cfg.Probe.Message)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/flags.log", cfg.Log.ProbeLogPath)
	assert.Equal(t, 3, cfg.Log.TailLines)
	assert.Equal(t, "beef", cfg.Crypto.EncryptionKey)
	assert.Equal(t, "flag-phrase", cfg.Crypto.SecretPhrase)
	assert.Equal(t, "127.0.0.1:40002", cfg.Server.Address)
	assert.True(t, cfg.Server.ShouldWriteConfig())
	assert.True(t, cfg.Server.ShouldEncryptConfig())
}

func TestParseFlags_NoArgsIsZero(t *testing.T) {
	cfg := ParseFlags(newFlagSet(t))
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_NilFlagSet(t *testing.T) {
	assert.Equal(t, StructuredConfig{}, *ParseFlags(nil))
}

// TestParseFlags_UndefinedFlagsIgnored verifies that a flag set missing some
// of the flags does not fail.
func TestParseFlags_UndefinedFlagsIgnored(t *testing.T) {
	fs := pflag.NewFlagSet("partial", pflag.ContinueOnError)
	fs.String(flagHypothesis, "", "")
	require.NoError(t, fs.Parse([]string{"--hypothesis", "H9"}))

	cfg := ParseFlags(fs)
	assert.Equal(t, "H9", cfg.Probe.HypothesisID)
	assert.Empty(t, cfg.Server.Address)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	err := fs.Parse([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

// TestGetStructuredConfig_AnyPortAddress verifies that ":0" reaches the server
// config instead of falling back to the default address.
func TestGetStructuredConfig_AnyPortAddress(t *testing.T) {
	clearEnvVars(t)
	for _, addr := range []string{":0", "127.0.0.1:0"} {
		t.Run(addr, func(t *testing.T) {
			cfg, err := GetStructuredConfig(newFlagSet(t, "--address", addr))
			require.NoError(t, err)
			assert.Equal(t, addr, cfg.Server.Address)
		})
	}
}

func TestParseFlags_BoolsOnlyWhenChanged(t *testing.T) {
	cfg := ParseFlags(newFlagSet(t, "--write-config=false"))

	require.NotNil(t, cfg.Server.WriteConfig)
	assert.False(t, *cfg.Server.WriteConfig)
	assert.Nil(t, cfg.Server.EncryptConfig)
}

// TestGetStructuredConfig_ExplicitFalseFlagWins verifies that a false flag
// overrides true from env and JSON.
func TestGetStructuredConfig_ExplicitFalseFlagWins(t *testing.T) {
	payload := StructuredJSONConfig{}
	on := true
	payload.Server.EncryptConfig = &on
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"CONFIG":              path,
		"SERVER_WRITE_CONFIG": "true",
	})

	cfg, err := GetStructuredConfig(newFlagSet(t, "--write-config=false", "--encrypt-config=false"))
	require.NoError(t, err)
	assert.False(t, cfg.Server.ShouldWriteConfig())
	assert.False(t, cfg.Server.ShouldEncryptConfig())

	cfg, err = GetStructuredConfig(newFlagSet(t))
	require.NoError(t, err)
	assert.True(t, cfg.Server.ShouldWriteConfig())
	assert.True(t, cfg.Server.ShouldEncryptConfig())
}
