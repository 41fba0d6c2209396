package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/semiotic-labs/agentium-docs/internal/llm"
	"github.com/semiotic-labs/agentium-docs/internal/playground"
	"github.com/semiotic-labs/agentium-docs/internal/relay"
	"github.com/semiotic-labs/agentium-docs/internal/render"
	"github.com/semiotic-labs/agentium-docs/internal/search"
	"github.com/semiotic-labs/agentium-docs/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the docs backend HTTP server",
	Long:  `Starts the HTTP server with the search API, the streaming chat relay (SSE and WebSocket) and the API playground proxy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)
		defer log.Sync()

		// A missing gateway key keeps the server up; the relay answers 503.
		provider, err := llm.NewProvider(cfg.Gateway.URL, cfg.Gateway.Model, cfg.Gateway.RequestsPerMinute)
		if err != nil {
			if !errors.Is(err, llm.ErrNoGatewayKey) {
				return fmt.Errorf("creating LLM provider: %w", err)
			}
			log.Warn("chat relay disabled", "reason", err)
		}

		port := cfg.Server.Port
		if servePort > 0 {
			port = servePort
		}

		srv := server.New(server.Config{
			Port:           port,
			AllowAll:       cfg.Server.AllowAllOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		}, server.Deps{
			Index: search.MustDefault(),
			Relay: relay.New(relay.Options{
				Provider:   provider,
				Model:      cfg.Gateway.Model,
				RateLimit:  cfg.RateLimit.Max,
				RateWindow: cfg.RateLimit.Window,
				Renderer:   render.New(cfg.Render.HighlightStyle),
				Logger:     log.With("component", "relay"),
			}),
			Playground: playground.NewHandler(cfg.Playground.LatencyMin, cfg.Playground.LatencyMax, log.With("component", "playground")),
			Logger:     log,
		})

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		log.Info("agentium-docs starting", "version", Version, "port", port, "model", cfg.Gateway.Model, "relay", provider != nil)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
