package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/handler"
	"github.com/MKhiriev/go-face-register/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// listen opens the listening socket; replaced in tests.
	listen func(network, address string) (net.Listener, error)
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		listen:     net.Listen,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) Run(ctx context.Context) error {
	listener, err := s.listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serveErr
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err = <-serveErr:
		return err
	}
}
