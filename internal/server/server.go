package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gchalakovmmi/nap/internal/config"
	"github.com/gchalakovmmi/nap/internal/handler"
	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/workers"
)

type server struct {
	httpServer *httpServer

	// backgroundWorkers are started alongside the HTTP server and stopped
	// before it on shutdown.
	backgroundWorkers *workers.Workers

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, backgroundWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:        newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		backgroundWorkers: backgroundWorkers,
		logger:            logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if s.backgroundWorkers != nil {
		s.backgroundWorkers.StartAll(ctx)
	}

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	if s.backgroundWorkers != nil {
		s.backgroundWorkers.StopAll()
	}

	s.httpServer.Shutdown()
}
