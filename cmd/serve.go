package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/petition-tracker/internal/adapters/httpapi"
)

const shutdownTimeout = 10 * time.Second

var errTokenRequired = errors.New("serve.require_token is set but no API token is stored: run pt auth set --token")

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve recorded petitions over the tracker HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := app.daemonLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var token string
			if app.settings.Serve.RequireToken {
				token, err = app.service.Token(ctx)
				if err != nil {
					return err
				}
				if token == "" {
					return errTokenRequired
				}
			}

			store, err := app.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if addr == "" {
				addr = app.settings.Serve.Addr
			}
			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}

			server := &http.Server{
				Handler:           httpapi.NewRouter(store, httpapi.Options{Token: token, Logger: logger}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			return serveHTTP(ctx, server, listener, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: serve.addr)")

	return cmd
}

// serveHTTP serves until ctx ends, then drains in-flight requests.
func serveHTTP(ctx context.Context, server *http.Server, listener net.Listener, logger *zap.Logger) error {
	served := make(chan error, 1)
	go func() {
		served <- server.Serve(listener)
	}()
	logger.Info("api server listening", zap.String("addr", listener.Addr().String()))

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("api server shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shut down api server: %w", err)
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve api: %w", err)
	}

	return nil
}
