package main

import (
	"io"

	"github.com/MKhiriev/probe-doctor/internal/adapter"
	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/service"
	"github.com/MKhiriev/probe-doctor/models"
	"github.com/spf13/cobra"
)

// app carries what the commands share. cfg, log and services are filled in
// by setup once flags are parsed.
type app struct {
	buildInfo models.AppBuildInfo
	stdout    io.Writer
	stderr    io.Writer

	// prober replaces the HTTP prober when set.
	prober adapter.Prober

	cfg      *config.StructuredConfig
	log      *logger.Logger
	services *service.Services
}

func newApp(info models.AppBuildInfo, stdout, stderr io.Writer) *app {
	return &app{
		buildInfo: info,
		stdout:    stdout,
		stderr:    stderr,
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.Name(), a.stderr, cfg.Log.Level)
	log.Debug().
		Str("workspace", cfg.Workspace.Override()).
		Int("default_port", cfg.Probe.DefaultPort).
		Str("probe_log", cfg.Log.ProbeLogPath).
		Str("address", cfg.Server.Address).
		Msg("received configs")

	services, err := service.NewServices(a.prober, cfg, log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.services = services
	return nil
}
