package fakeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/creatorpilot/internal/fakeapi/config"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *Server
}

func NewApp(c *config.Config) (*App, error) {
	if c.SecretKey == "" {
		return nil, fmt.Errorf("fakeapi: secret key is empty")
	}

	logger := logging.New(os.Stdout, "info")
	srv := NewServer(Options{
		SecretKey:  []byte(c.SecretKey),
		TokenTTL:   c.TokenTTL,
		RequestLog: c.RequestLog,
		Logger:     logger,
	})

	return &App{config: c, logger: logger, server: srv}, nil
}

// Run serves until ctx is done or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	hs := &http.Server{
		Addr:              app.config.Addr,
		Handler:           app.server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting fake API...", "addr", app.config.Addr)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return hs.Shutdown(shutdownCtx)
}
