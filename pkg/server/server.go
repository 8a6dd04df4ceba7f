package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recon-landing/pkg/api"
	"recon-landing/pkg/config"
	"recon-landing/pkg/middleware"
)

const (
	StaticPrefix    = "/static"
	shutdownTimeout = 10 * time.Second
)

// NewRouter registers every route on a new gin engine
func NewRouter(cfg *config.Config, handlers *api.Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.Mode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/", handlers.LandingPage)
	router.HEAD("/", handlers.LandingPage)
	router.GET("/health", handlers.HealthCheck)

	if HasStatic(cfg) {
		router.Static(StaticPrefix, cfg.StaticDir)
	}

	return router
}

// HasStatic reports whether the configured static dir exists, in which case the
// browser client is served from it.
func HasStatic(cfg *config.Config) bool {
	if cfg.StaticDir == "" {
		return false
	}
	info, err := os.Stat(cfg.StaticDir)
	return err == nil && info.IsDir()
}

// Run serves the router until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, addr string, router http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
