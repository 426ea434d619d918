package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/MKhiriev/probe-doctor/internal/handler"
	"github.com/MKhiriev/probe-doctor/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	httpServer *httpServer
	publisher  *EndpointPublisher
	logger     *logger.Logger
}

// NewServer binds the HTTP listener for handlers. publisher may be nil, in
// which case no files are written into the workspace.
func NewServer(handlers *handler.Handlers, cfg config.Server, publisher *EndpointPublisher, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Address == "" {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer: httpSrv,
		publisher:  publisher,
		logger:     logger,
	}, nil
}

func (s *server) Addr() string {
	return s.httpServer.Addr()
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if s.publisher != nil {
		if err := s.publisher.Publish(s.httpServer.Port()); err != nil {
			s.httpServer.close()
			return fmt.Errorf("%w: %w", ErrPublishEndpoint, err)
		}
		defer s.publisher.Withdraw()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()
	s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")

	var err error
	select {
	case <-ctx.Done():
		s.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.httpServer.Shutdown(ctx)
}
