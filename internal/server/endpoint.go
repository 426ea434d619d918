// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/probe-doctor/internal/crypto"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/resolver"
	"github.com/MKhiriev/probe-doctor/models"
)

const statusActive = "active"

// EndpointPublisher advertises a listening server to probes by writing the
// port file and the structured config into a workspace root, at the paths
// the resolver reads.
type EndpointPublisher struct {
	root   string
	cipher crypto.ConfigCipher
	now    func() time.Time

	written []string
	logger  *logger.Logger
}

// NewEndpointPublisher returns a publisher for root. The structured config is
// written as plain JSON when cipher is nil.
func NewEndpointPublisher(root string, cipher crypto.ConfigCipher, log *logger.Logger) *EndpointPublisher {
	if log == nil {
		log = logger.Nop()
	}
	return &EndpointPublisher{
		root:   root,
		cipher: cipher,
		now:    time.Now,
		logger: log,
	}
}

// Publish writes both files for port. Nothing is written if the config
// cannot be encoded.
func (p *EndpointPublisher) Publish(port int) error {
	cfg := models.DebugConfig{
		URL:       fmt.Sprintf("http://localhost:%d/", port),
		Status:    statusActive,
		Timestamp: p.now().UnixMilli(),
	}

	content, err := p.encode(cfg)
	if err != nil {
		return err
	}

	configPath := resolver.ConfigPath(p.root)
	portPath := resolver.PortPath(p.root)

	if err = os.WriteFile(portPath, []byte(strconv.Itoa(port)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", portPath, err)
	}
	p.written = append(p.written, portPath)

	if err = os.WriteFile(configPath, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", configPath, err)
	}
	p.written = append(p.written, configPath)

	p.logger.Info().
		Str("port_file", portPath).
		Str("config_file", configPath).
		Str("url", cfg.URL).
		Bool("encrypted", p.cipher != nil).
		Msg("endpoint published")
	return nil
}

// Withdraw removes the files written by Publish. Files already gone are
// ignored.
func (p *EndpointPublisher) Withdraw() error {
	var errs []error
	for _, path := range p.written {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn().Err(err).Str("path", path).Msg("failed to remove endpoint file")
			errs = append(errs, err)
			continue
		}
		p.logger.Debug().Str("path", path).Msg("endpoint file removed")
	}
	p.written = nil
	return errors.Join(errs...)
}

func (p *EndpointPublisher) encode(cfg models.DebugConfig) ([]byte, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	if p.cipher == nil {
		return data, nil
	}

	sealed, err := p.cipher.Encrypt(data)
	if err != nil {
		return nil, fmt.Errorf("encrypt config: %w", err)
	}
	return []byte(sealed), nil
}
