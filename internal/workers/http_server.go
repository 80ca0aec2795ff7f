package workers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-sign-in/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// HTTPServer serves a handler until its context ends, then shuts down
// gracefully. It backs the metrics endpoint.
type HTTPServer struct {
	server *http.Server
	logger *logger.Logger

	ready chan net.Addr
}

// NewHTTPServer returns an [HTTPServer] listening on addr.
func NewHTTPServer(addr string, handler http.Handler, logger *logger.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		ready:  make(chan net.Addr, 1),
	}
}

// Addr returns the bound address once the listener is open.
func (h *HTTPServer) Addr() <-chan net.Addr {
	return h.ready
}

// Run implements [Worker].
func (h *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("http server listen on %s: %w", h.server.Addr, err)
	}
	h.ready <- ln.Addr()
	h.logger.Info().Str("func", "HTTPServer.Run").Str("address", ln.Addr().String()).Msg("launching HTTP server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Str("func", "HTTPServer.Run").Msg("HTTP server shutdown")
		return fmt.Errorf("http server shutdown: %w", err)
	}
	h.logger.Info().Str("func", "HTTPServer.Run").Msg("HTTP server shutdown gracefully")

	return nil
}
