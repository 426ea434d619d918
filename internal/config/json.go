package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the --config file.
type StructuredJSONConfig struct {
	Workspace struct {
		Root     string `json:"root"`
		StartDir string `json:"start_dir"`
	} `json:"workspace,omitempty"`

	Probe struct {
		DefaultPort    int      `json:"default_port"`
		ConnectTimeout Duration `json:"connect_timeout"`
		RequestTimeout Duration `json:"request_timeout"`
		HypothesisID   string   `json:"hypothesis_id"`
		Message        string   `json:"message"`
	} `json:"probe,omitempty"`

	Log struct {
		Level        string `json:"level"`
		ProbeLogPath string `json:"probe_log_path"`
		TailLines    int    `json:"tail_lines"`
	} `json:"log,omitempty"`

	Crypto struct {
		EncryptionKey string `json:"encryption_key"`
		SecretPhrase  string `json:"secret_phrase"`
	} `json:"crypto,omitempty"`

	Server struct {
		Address       string `json:"address"`
		WriteConfig   *bool  `json:"write_config"`
		EncryptConfig *bool  `json:"encrypt_config"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Workspace: Workspace{
			Root:     jsonCfg.Workspace.Root,
			StartDir: jsonCfg.Workspace.StartDir,
		},
		Probe: Probe{
			DefaultPort:    jsonCfg.Probe.DefaultPort,
			ConnectTimeout: time.Duration(jsonCfg.Probe.ConnectTimeout),
			RequestTimeout: time.Duration(jsonCfg.Probe.RequestTimeout),
			HypothesisID:   jsonCfg.Probe.HypothesisID,
			Message:        jsonCfg.Probe.Message,
		},
		Log: Log{
			Level:        jsonCfg.Log.Level,
			ProbeLogPath: jsonCfg.Log.ProbeLogPath,
			TailLines:    jsonCfg.Log.TailLines,
		},
		Crypto: Crypto{
			EncryptionKey: jsonCfg.Crypto.EncryptionKey,
			SecretPhrase:  jsonCfg.Crypto.SecretPhrase,
		},
		Server: Server{
			Address:       jsonCfg.Server.Address,
			WriteConfig:   jsonCfg.Server.WriteConfig,
			EncryptConfig: jsonCfg.Server.EncryptConfig,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
