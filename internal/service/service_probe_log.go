package service

import (
	"context"

	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/MKhiriev/probe-doctor/internal/logger"
)

type probeLogService struct {
	path      string
	tailLines int

	logger *logger.Logger
}

func NewProbeLogService(cfg config.Log, logger *logger.Logger) ProbeLogService {
	return &probeLogService{
		path:      cfg.ProbeLogPath,
		tailLines: cfg.TailLines,
		logger:    logger,
	}
}

func (s *probeLogService) Tail(ctx context.Context) ([]string, int, error) {
	lines, total, err := logger.Tail(s.path, s.tailLines)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", s.path).Msg("probe log unavailable")
		return nil, 0, err
	}
	return lines, total, nil
}

func (s *probeLogService) Path() string {
	return s.path
}
