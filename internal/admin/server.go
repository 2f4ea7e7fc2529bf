package admin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/drishya/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server runs the admin API until the context is canceled, then shuts down
// gracefully.
type Server struct {
	srv    *http.Server
	logger logging.Logger
}

func NewServer(addr string, handlers *Handlers, logger logging.Logger) *Server {
	mux := http.NewServeMux()
	handlers.Register(mux)
	return &Server{
		srv:    &http.Server{Addr: addr, Handler: mux},
		logger: logger.With("module", "admin"),
	}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "admin api listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info(ctx, "shutting down admin api")
	return s.srv.Shutdown(shutdownCtx)
}
