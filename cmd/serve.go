package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/monsoon-labs/rainify/internal/config"
	"github.com/monsoon-labs/rainify/internal/gemini"
	"github.com/monsoon-labs/rainify/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for the photo transform interface",
		Long: `Starts the Rainify web interface on the specified port.

The web interface lets you upload a photo and reimagine it as a rainy
monsoon street scene in Dhaka using Gemini image generation.`,
		Example: `  # Start server on default port 8787
  rainify serve

  # Start server on custom port with a config file
  rainify serve --port 3000 --config rainify.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			client, err := gemini.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			handler := handlers.New(cfg, client)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/transform", handler.HandleTransform)
			mux.HandleFunc("/api/sessions", handler.HandleSessions)
			mux.HandleFunc("/api/sessions/", handler.HandleSessionDetail)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Rainify interface available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8787", "Port to listen on")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a rainify.yaml config file")

	return cmd
}
