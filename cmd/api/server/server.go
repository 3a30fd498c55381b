package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"estate-service/internal/adapter/gin/middleware"
	"estate-service/internal/adapter/gin/router"
	"estate-service/internal/config"
	"estate-service/pkg/redisclient"
	"estate-service/pkg/token"
)

// Server wraps the HTTP server and its configuration.
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance with the router fully assembled.
func New(
	cfg *config.Config,
	l *zap.Logger,
	h router.Handlers,
	tokens token.Service,
	resolver middleware.PrincipalResolver,
	rateCfg middleware.RateLimiterConfig,
	rdb *redisclient.Client,
) *Server {
	engine := router.SetupRouter(h, tokens, resolver, rateCfg, rdb, l)

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           engine,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start runs the HTTP server until the context is canceled or the process
// receives SIGINT/SIGTERM, then shuts it down within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		timeout := time.Duration(s.Config.App.ShutdownTimeoutSeconds) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.Logger.Info("shutting down HTTP server",
			zap.Int("timeout_seconds", s.Config.App.ShutdownTimeoutSeconds),
		)
		return s.HTTP.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
