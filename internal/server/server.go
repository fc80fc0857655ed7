package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/handler"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/internal/workers"
)

type server struct {
	httpServer *httpServer
	services   *service.Services
	workers    *workers.Workers

	// shutdownTimeout bounds how long in-flight requests may take to drain.
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, services *service.Services, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		services:        services,
		workers:         workers,
		shutdownTimeout: cfg.RequestTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// closes the services. Pending removals are cancelled at that point. It is
// safe to call more than once.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown(s.shutdownTimeout)
		}
		if s.services != nil {
			s.services.Close()
		}
	})
}

func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	return s.serve(ctx, ln)
}

// serve runs until ctx is cancelled or the listener fails, then shuts
// everything down in order: requests, services, workers.
func (s *server) serve(ctx context.Context, ln net.Listener) error {
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	if s.workers != nil {
		s.logger.Info().Msg("Launching workers")
		s.workers.Run(workersCtx)
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	s.Shutdown()

	stopWorkers()
	if s.workers != nil {
		s.workers.Wait()
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}
