package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/web"
)

const cleanupInterval = 24 * time.Hour

func serveCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configFile)
		},
	}
}

func runServe(parent context.Context, configFile string) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log, err := logger.Setup(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		return err
	}

	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		log.Error("content.load", "path", cfg.ContentPath, "error", err)
		return err
	}

	var store *analytics.Store
	if cfg.AnalyticsEnabled {
		store, err = analytics.Open(cfg.DBPath, cfg.HashSalt)
		if err != nil {
			log.Error("analytics.open", "path", cfg.DBPath, "error", err)
			return err
		}
		defer store.Close()
		log.Info("analytics.enabled", "path", cfg.DBPath, "stable_hashes", cfg.HashSalt != "")
	}

	srv, err := web.New(web.Deps{Config: cfg, Content: c, Store: store, Logger: log})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.RunCleanup(ctx, cleanupInterval)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server.listening", "addr", httpSrv.Addr, "admin", cfg.AdminToken != "")
		errCh <- httpSrv.ListenAndServe()
	}()

	// Deferred store.Close runs after this, once tracking writes are done.
	defer srv.WaitTracking()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", httpSrv.Addr, err)
	case <-ctx.Done():
	}

	log.Info("server.shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
