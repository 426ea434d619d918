// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns a workspace root into the companion server URL.
//
// Resolution is an ordered chain of [Strategy] values. Each strategy either
// produces a URL or declines; the first one that produces a URL wins. The
// standard chain is:
//  1. the structured config file (.rootrace/ai_debug_config, then
//     .ai_debug_config), JSON or encrypted JSON with a "url" field;
//  2. the port file (.rootrace/debug_port, then .debug_port);
//  3. http://localhost:<default port>/.
//
// Read and parse failures never surface to the caller: they only decide
// which strategy wins.
package resolver

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// Strategy is one source of the server URL.
type Strategy interface {
	// Name identifies the source in logs and reports.
	Name() string

	// Resolve returns the URL derived from root, or false if this source is
	// absent or unusable.
	Resolve(root string) (string, bool)
}

// RootFinder locates the workspace root when the caller does not supply one.
type RootFinder interface {
	FindRoot(start string) (string, error)
}
