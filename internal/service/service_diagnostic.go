// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/probe-doctor/internal/adapter"
	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/report"
	"github.com/MKhiriev/probe-doctor/internal/resolver"
	"github.com/MKhiriev/probe-doctor/internal/workspace"
	"github.com/MKhiriev/probe-doctor/models"
)

type diagnosticService struct {
	finder   *workspace.Finder
	resolver *resolver.Resolver
	prober   adapter.Prober

	workspace    config.Workspace
	probe        config.Probe
	probeLog     *logger.Logger
	probeLogPath string
	now          func() time.Time

	logger *logger.Logger
}

func NewDiagnosticService(finder *workspace.Finder, urlResolver *resolver.Resolver, prober adapter.Prober, cfg *config.StructuredConfig, log *logger.Logger) DiagnosticService {
	return &diagnosticService{
		finder:       finder,
		resolver:     urlResolver,
		prober:       prober,
		workspace:    cfg.Workspace,
		probe:        cfg.Probe,
		probeLog:     logger.NewProbeLogger(cfg.Log.ProbeLogPath),
		probeLogPath: cfg.Log.ProbeLogPath,
		now:          time.Now,
		logger:       log,
	}
}

// Resolve uses the configured override when set, otherwise the nearest
// marked ancestor of the start directory. When no marker is found the start
// directory itself (or the working directory) is used, as probes do.
func (s *diagnosticService) Resolve(ctx context.Context) (resolver.Resolution, error) {
	root, err := s.finder.Resolve(s.workspace.Override(), s.workspace.StartDir)
	if err != nil {
		if !errors.Is(err, workspace.ErrRootNotFound) {
			return resolver.Resolution{}, fmt.Errorf("%w: %w", ErrWorkspaceNotResolved, err)
		}
		root = s.workspace.StartDir
	}

	return s.resolver.Resolve(root), nil
}

func (s *diagnosticService) Check(ctx context.Context) (report.Check, error) {
	res, err := s.Resolve(ctx)
	if err != nil {
		return report.Check{}, err
	}

	s.logger.Info().Str("url", res.URL).Msg("checking companion server")
	result := s.prober.Check(ctx, res.URL, s.payload())

	return s.newCheck(res, result), nil
}

func (s *diagnosticService) Send(ctx context.Context) (report.Check, error) {
	res, err := s.Resolve(ctx)
	if err != nil {
		return report.Check{}, err
	}

	payload := s.payload()
	s.probeLog.Info().Msgf("Probe EXECUTING: %s - %s, URL: %s", payload.HypothesisID, payload.Message, res.URL)

	result := s.prober.Send(ctx, res.URL, payload)
	if result.OK() {
		s.probeLog.Info().Msgf("Probe SUCCESS: %s - status=%d, URL=%s", payload.HypothesisID, result.StatusCode, res.URL)
	} else {
		s.probeLog.Error().Msgf("Probe ERROR: %s - %s, URL: %s", payload.HypothesisID, result, res.URL)
	}

	return s.newCheck(res, result), nil
}

func (s *diagnosticService) payload() models.ProbePayload {
	return adapter.NewPayload(s.probe.HypothesisID, s.probe.Message, s.now())
}

func (s *diagnosticService) newCheck(res resolver.Resolution, result adapter.Result) report.Check {
	return report.Check{
		Root:         res.Root,
		Source:       res.Source,
		URL:          res.URL,
		Result:       result,
		ProbeLogPath: s.probeLogPath,
	}
}
