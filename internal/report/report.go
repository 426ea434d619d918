// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders the human-readable summary printed by the CLI.
package report

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/probe-doctor/internal/adapter"
	"github.com/charmbracelet/lipgloss"
)

// Check is everything the check command knows after a run.
type Check struct {
	Root         string
	Source       string
	URL          string
	Result       adapter.Result
	ProbeLogPath string
}

// Render returns the framed summary of c followed by the recommendations
// for its outcome.
func Render(c Check) string {
	var b strings.Builder

	if c.Result.OK() {
		b.WriteString(passStyle.Render("TEST PASSED: the companion server is reachable"))
	} else {
		b.WriteString(failStyle.Render("TEST FAILED: the companion server is not reachable"))
	}
	b.WriteString("\n\n")

	b.WriteString(row("Workspace root", valueOrNA(c.Root)))
	b.WriteString(row("Config source", valueOrNA(c.Source)))
	b.WriteString(row("Server URL", valueOrNA(c.URL)))
	b.WriteString(row("Outcome", c.Result.Kind.String()))
	if c.Result.OK() {
		b.WriteString(row("Result", c.Result.String()))
	} else {
		b.WriteString(row("Error", c.Result.String()))
	}

	body := boxStyle.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, body, "", renderHints(Hints(c.Result, c.ProbeLogPath)))
}

// Hints returns the numbered recommendations for res.
func Hints(res adapter.Result, probeLogPath string) []string {
	if probeLogPath == "" {
		probeLogPath = "~/.roo_probe_debug.log"
	}

	if res.OK() {
		return []string{
			"If the probe code does not write to the log, check that execution reaches the probe, that the probe is inserted correctly and that its code has no syntax errors",
			fmt.Sprintf("Check %s for detailed probe logs", probeLogPath),
			"Make sure the HTTP server is running (see the extension's output channel)",
		}
	}

	hints := []string{
		"Make sure the HTTP server is running: open the 'AI Debugger' output channel and check that the server listens on the port from .debug_port",
		"Check that the port is not taken by another process",
		"Try restarting the RooTrace extension",
	}

	switch res.Kind {
	case adapter.KindTimeout:
		hints = append(hints, "Probes with timeout=1.0 may give up too early: run 'probe-doctor fix-timeouts <file>'")
	case adapter.KindBadStatus:
		hints = append(hints, "The server answered but rejected the request: check that the URL points to the companion server")
	case adapter.KindConnectionRefused:
		hints = append(hints, "Nothing listens on that port: a stale .debug_port may point to a server that is gone")
	}

	return hints
}

// ProbeLog renders the tail of the probe log. total is the number of
// non-empty lines in the whole file.
func ProbeLog(path string, lines []string, total int) string {
	if len(lines) == 0 {
		return helpStyle.Render(fmt.Sprintf("Probe log %s is empty", path))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Probe log %s, lines: %d\n", path, total))
	b.WriteString(fmt.Sprintf("Last %d lines:\n", len(lines)))
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Probe log entries mean the probe code is executing."))
	return b.String()
}

func renderHints(hints []string) string {
	var b strings.Builder
	b.WriteString(labelStyle.UnsetWidth().Render("RECOMMENDATIONS:"))
	for i, h := range hints {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, h))
	}
	return b.String()
}

func row(label, value string) string {
	return labelStyle.Render(label+":") + value + "\n"
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
