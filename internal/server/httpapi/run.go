package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Run serves the API on address until ctx is cancelled, then drains
// in-flight requests for at most shutdownTimeout before returning.
func (s *Server) Run(ctx context.Context, address string, shutdownTimeout time.Duration) error {
	listen, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen, s.Router(), shutdownTimeout)
}

func (s *Server) serve(ctx context.Context, listen net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Serve returns as soon as Shutdown starts; drained is closed only
	// once Shutdown itself has returned.
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-drained
	return nil
}
