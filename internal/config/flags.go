package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared by [RegisterFlags] and [ParseFlags].
const (
	flagConfig         = "config"
	flagWorkspace      = "workspace"
	flagStartDir       = "start-dir"
	flagDefaultPort    = "default-port"
	flagConnectTimeout = "connect-timeout"
	flagRequestTimeout = "request-timeout"
	flagHypothesis     = "hypothesis"
	flagMessage        = "message"
	flagLogLevel       = "log-level"
	flagProbeLog       = "probe-log"
	flagTail           = "tail"
	flagEncryptionKey  = "encryption-key"
	flagSecretPhrase   = "secret-phrase"
	flagAddress        = "address"
	flagWriteConfig    = "write-config"
	flagEncryptConfig  = "encrypt-config"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int

	// set records a successful Set, so ":0" is not mistaken for unset.
	set bool
}

// RegisterFlags defines every configuration flag on fs. All defaults are zero
// values so that unset flags never shadow env, JSON or built-in defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.StringP(flagWorkspace, "w", "", "workspace root (skips marker search)")
	fs.String(flagStartDir, "", "directory to start the workspace search from (default: cwd)")
	fs.Int(flagDefaultPort, 0, "fallback companion server port (default 51234)")
	fs.Duration(flagConnectTimeout, 0, "TCP connect timeout (default 5s)")
	fs.Duration(flagRequestTimeout, 0, "HTTP request timeout (default 10s)")
	fs.String(flagHypothesis, "", "hypothesis id sent with the probe (default H1)")
	fs.String(flagMessage, "", "message sent with the probe")
	fs.String(flagLogLevel, "", "console log level: debug, info, warn, error (default info)")
	fs.String(flagProbeLog, "", "probe log path (default ~/.roo_probe_debug.log)")
	fs.Int(flagTail, 0, "probe log lines to show (default 10)")
	fs.String(flagEncryptionKey, "", "hex AES-256 key for encrypted configs")
	fs.String(flagSecretPhrase, "", "secret phrase the config key is derived from")
	fs.VarP(&NetAddress{}, flagAddress, "a", "stand-in server address host:port (default localhost:51234)")
	fs.Bool(flagWriteConfig, false, "write .debug_port and .ai_debug_config once listening")
	fs.Bool(flagEncryptConfig, false, "encrypt the written .ai_debug_config")
}

// ParseFlags converts the flags registered by [RegisterFlags] into a
// [StructuredConfig]. Flags that are not defined on fs are left zero; a nil
// fs yields an empty config.
func ParseFlags(fs *pflag.FlagSet) *StructuredConfig {
	if fs == nil {
		return &StructuredConfig{}
	}

	return &StructuredConfig{
		Workspace: Workspace{
			Root:     getString(fs, flagWorkspace),
			StartDir: getString(fs, flagStartDir),
		},
		Probe: Probe{
			DefaultPort:    getInt(fs, flagDefaultPort),
			ConnectTimeout: getDuration(fs, flagConnectTimeout),
			RequestTimeout: getDuration(fs, flagRequestTimeout),
			HypothesisID:   getString(fs, flagHypothesis),
			Message:        getString(fs, flagMessage),
		},
		Log: Log{
			Level:        getString(fs, flagLogLevel),
			ProbeLogPath: getString(fs, flagProbeLog),
			TailLines:    getInt(fs, flagTail),
		},
		Crypto: Crypto{
			EncryptionKey: getString(fs, flagEncryptionKey),
			SecretPhrase:  getString(fs, flagSecretPhrase),
		},
		Server: Server{
			Address:       getValue(fs, flagAddress),
			WriteConfig:   getChangedBool(fs, flagWriteConfig),
			EncryptConfig: getChangedBool(fs, flagEncryptConfig),
		},
		JSONFilePath: getString(fs, flagConfig),
	}
}

func getString(fs *pflag.FlagSet, name string) string {
	v, _ := fs.GetString(name)
	return v
}

func getInt(fs *pflag.FlagSet, name string) int {
	v, _ := fs.GetInt(name)
	return v
}

// getChangedBool returns nil for a flag left out of the command line, so
// only an explicit --name or --name=false reaches the merge.
func getChangedBool(fs *pflag.FlagSet, name string) *bool {
	if fs.Lookup(name) == nil || !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

func getDuration(fs *pflag.FlagSet, name string) time.Duration {
	v, _ := fs.GetDuration(name)
	return v
}

func getValue(fs *pflag.FlagSet, name string) string {
	f := fs.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// String returns a canonical host:port string for a NetAddress, or "" when
// it was never Set and neither part is filled in.
func (a *NetAddress) String() string {
	if !a.set && a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 0 || port > 65535 {
		return errors.New("port number must be within 0..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	a.set = true
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
