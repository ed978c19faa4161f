package app

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/mufasadev/encounter-types/internal/config"
	"github.com/mufasadev/encounter-types/internal/errors"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/rs/zerolog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// Service serves the encounter type API.
type Service struct {
	config *config.Config
	logger *zerolog.Logger
}

func NewService(cfg *config.Config) *Service {
	l := log.GetLogger()
	return &Service{config: cfg, logger: &l}
}

// Run serves router on the configured port until ctx is done or SIGINT/SIGTERM arrives,
// then drains in-flight requests.
func (s *Service) Run(ctx context.Context, router chi.Router) {
	server := &http.Server{
		Addr:              s.config.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal().Err(err).Msg(errors.ErrorFailedToRunTheServer)
		}
	}()

	s.logger.Info().Str("addr", server.Addr).Msg("encounter type API listening")
	done := make(chan struct{})
	go s.shutdown(ctx, server, done)
	<-done
}

func (s *Service) shutdown(ctx context.Context, server *http.Server, done chan struct{}) {
	defer close(done)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	reason := "context"
	select {
	case <-ctx.Done():
	case sig := <-quit:
		reason = sig.String()
	}
	s.logger.Info().Str("reason", reason).Dur("timeout", shutdownTimeout).Msg("encounter type API draining requests")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		s.logger.Error().Err(err).Msg(errors.ErrorFailedToShutdownTheServer)
		return
	}
	s.logger.Info().Msg("encounter type API stopped")
}
