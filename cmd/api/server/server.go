package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// ListenAddr is where the service accepts connections. It is not configurable.
const ListenAddr = "0.0.0.0:8080"

// Server owns the HTTP listener
type Server struct {
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a server for handler bound to addr
func New(handler http.Handler, addr string, l *zap.Logger) *Server {
	return &Server{
		Logger: l,
		HTTP:   SetupGinServer(handler, addr, l),
	}
}

// Start binds the listener and serves until Shutdown. A bind failure is
// returned before any request is accepted.
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(ctx, "tcp", s.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.HTTP.Addr, err)
	}

	return s.Serve(lis)
}

// Serve accepts connections on lis until Shutdown
func (s *Server) Serve(lis net.Listener) error {
	s.Logger.Info("HTTP server running", zap.String("address", lis.Addr().String()))

	if err := s.HTTP.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down HTTP server...")
	return s.HTTP.Shutdown(ctx)
}
