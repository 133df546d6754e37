package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// SetupGinServer wraps the Gin router in an http.Server with enforced timeouts
func SetupGinServer(handler http.Handler, addr string, l *zap.Logger) *http.Server {
	l.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
