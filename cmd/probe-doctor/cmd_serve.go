package main

import (
	"github.com/MKhiriev/probe-doctor/internal/crypto"
	"github.com/MKhiriev/probe-doctor/internal/handler"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/server"
	"github.com/MKhiriev/probe-doctor/internal/service"
	"github.com/MKhiriev/probe-doctor/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run a stand-in companion server",
		Long: `serve answers probes the way the editor extension's companion server does:
POST / accepts a probe, GET /health reports liveness and GET /logs returns the
payloads received so far. With --write-config the bound port is advertised in
the workspace root until the server stops.`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := a.cfg.Server
	log := logger.NewLogger("probe-doctor-server")

	handlers, err := handler.NewHandlers(store.NewStorages(store.DefaultProbeCapacity), cfg, log)
	if err != nil {
		return err
	}

	var publisher *server.EndpointPublisher
	if cfg.ShouldWriteConfig() {
		publisher, err = a.newPublisher(cmd, log)
		if err != nil {
			return err
		}
	}

	srv, err := server.NewServer(handlers, cfg, publisher, log)
	if err != nil {
		return err
	}

	return srv.RunServer(ctx)
}

func (a *app) newPublisher(cmd *cobra.Command, log *logger.Logger) (*server.EndpointPublisher, error) {
	res, err := a.services.DiagnosticService.Resolve(cmd.Context())
	if err != nil {
		return nil, err
	}

	var cipher crypto.ConfigCipher
	if a.cfg.Server.ShouldEncryptConfig() {
		if cipher, err = service.NewConfigCipher(a.cfg.Crypto); err != nil {
			return nil, err
		}
	}

	return server.NewEndpointPublisher(res.Root, cipher, log), nil
}
