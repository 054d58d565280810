package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docpeek/docpeek/internal/ai"
	"github.com/docpeek/docpeek/internal/persona"
	"github.com/docpeek/docpeek/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string
	var model string
	var personaFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the outline and analysis HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			personas := persona.Defaults()
			if personaFile != "" {
				loaded, err := persona.Load(personaFile)
				if err != nil {
					return err
				}
				personas = loaded
			}

			var analyzer ai.Analyzer = ai.Noop{}
			if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
				g, err := ai.NewGemini(cmd.Context(), key, model)
				if err != nil {
					return err
				}
				analyzer = g
			} else {
				logger.Warn("GOOGLE_API_KEY not set, /api/analyze returns empty analyses")
			}

			srv := server.New(server.Config{
				Personas: personas,
				Analyzer: analyzer,
				Logger:   logger,
			})
			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model name (default: gemini-2.5-flash)")
	cmd.Flags().StringVar(&personaFile, "personas", "", "YAML file overriding the built-in personas")
	return cmd
}
