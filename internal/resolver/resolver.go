// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"
	"os"

	"github.com/MKhiriev/probe-doctor/internal/crypto"
	"github.com/MKhiriev/probe-doctor/internal/logger"
)

// DefaultPort is used when neither config source resolves.
const DefaultPort = 51234

// Resolution is the outcome of [Resolver.Resolve].
type Resolution struct {
	// Root is the workspace root the strategies were run against.
	Root string
	// URL is the resolved server URL; never empty.
	URL string
	// Source is the Name of the strategy that produced URL.
	Source string
}

// Resolver runs a strategy chain against a workspace root.
type Resolver struct {
	strategies []Strategy
	finder     RootFinder
	logger     *logger.Logger
}

// New builds a Resolver from an explicit chain. finder may be nil, in which
// case an empty root resolves against the current working directory.
func New(finder RootFinder, log *logger.Logger, strategies ...Strategy) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{
		strategies: strategies,
		finder:     finder,
		logger:     log,
	}
}

// NewDefault builds the standard chain: structured config (decrypting with
// cipher when non-nil), port file, then the default port.
func NewDefault(finder RootFinder, cipher crypto.ConfigCipher, defaultPort int, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return New(finder, log,
		NewStructuredConfigStrategy(cipher, log),
		NewPortFileStrategy(log),
		NewDefaultPortStrategy(defaultPort),
	)
}

// Resolve returns the first URL produced by the chain. An empty root is
// located with the RootFinder first, falling back to the working directory.
// The result always carries a URL: if no strategy answers, the built-in
// default port is used.
func (r *Resolver) Resolve(root string) Resolution {
	if root == "" {
		root = r.findRoot()
	}

	r.logger.Debug().Str("root", root).Msg("looking for server configuration")

	for _, s := range r.strategies {
		if url, ok := s.Resolve(root); ok && url != "" {
			r.logger.Info().Str("source", s.Name()).Str("url", url).Msg("resolved server url")
			return Resolution{Root: root, URL: url, Source: s.Name()}
		}
	}

	url := localURL(DefaultPort)
	r.logger.Warn().Str("url", url).Msg("no strategy resolved, using built-in default")
	return Resolution{Root: root, URL: url, Source: sourceDefault}
}

// ResolveURL is Resolve without the metadata.
func (r *Resolver) ResolveURL(root string) string {
	return r.Resolve(root).URL
}

func (r *Resolver) findRoot() string {
	if r.finder != nil {
		if root, err := r.finder.FindRoot(""); err == nil {
			return root
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	r.logger.Warn().Str("root", wd).Msg("workspace root not found, using working directory")
	return wd
}

func localURL(port int) string {
	return fmt.Sprintf("http://localhost:%d/", port)
}
