package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vilaca/gloom/internal/config"
	"github.com/vilaca/gloom/internal/dashboard"
	"github.com/vilaca/gloom/internal/profile"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the profile dashboard over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := dashboard.NewStdLogger()

	if err := cfg.Validate(); err != nil {
		if !errors.Is(err, config.ErrNoToken) {
			return err
		}
		logger.Printf("WARNING: %v; the profile will fail to load", err)
	}

	// Screens live until the process is asked to stop
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory, err := newProfileFactory(cfg, logger)
	if err != nil {
		return err
	}

	host := profile.NewHost(ctx, factory)
	defer host.Close()

	// Start fetching before the first page view
	host.Current()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           buildServer(cfg, host, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Starting Gloom on http://localhost%s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			exitCode = ExitRuntimeErr
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Printf("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
