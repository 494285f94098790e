// Command tipataskd runs the sync side of tipatask without the UI: a
// periodic pull/push daemon, one-shot pull and push commands, and a local
// emulator of the cloud KV endpoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	tipatask "github.com/donskikhas/tipatask-sub001"
	"github.com/donskikhas/tipatask-sub001/internal/config"
	"github.com/donskikhas/tipatask-sub001/internal/devkv"
	"github.com/donskikhas/tipatask-sub001/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tipataskd",
	Short: "tipatask snapshot sync daemon",
}

func main() {
	rootCmd.AddCommand(serveCmd(), pullCmd(), pushCmd(), devkvCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openApp(cfg *config.Config) (*tipatask.App, error) {
	log := logger.New("tipataskd")
	opts := []tipatask.Option{
		tipatask.WithLogger(log),
		tipatask.WithHTTPTimeout(cfg.HTTPTimeout),
		tipatask.WithQueueSize(cfg.QueueSize),
	}
	if cfg.DataDir != "" {
		opts = append(opts, tipatask.WithStorePath(filepath.Join(cfg.DataDir, "state.db")))
	}
	return tipatask.New(cfg.RemoteBaseURL, opts...)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the periodic pull loop and metrics endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			app, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			log := logger.New("tipataskd")

			if cfg.MetricsPort > 0 {
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", promhttp.Handler())
					if err := http.ListenAndServe(cfg.MetricsAddr(), mux); err != nil {
						log.Error().Err(err).Msg("metrics endpoint failed")
					}
				}()
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().Dur("interval", cfg.PullInterval).Msg("pull loop started")
			ticker := time.NewTicker(cfg.PullInterval)
			defer ticker.Stop()

			// Merge remote state immediately on startup, then on the tick.
			if app.Pull(ctx) {
				log.Info().Msg("local state updated from remote")
			}
			for {
				select {
				case <-ctx.Done():
					// Flush whatever the accessors scheduled before exit.
					flushCtx := context.Background()
					if err := app.AwaitSync(flushCtx); err != nil {
						log.Error().Err(err).Msg("final flush failed")
					}
					log.Info().Msg("shutting down")
					return nil
				case <-ticker.C:
					if app.Pull(ctx) {
						log.Info().Msg("local state updated from remote")
					}
				}
			}
		},
	}
}

func pullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Fetch the remote snapshot and merge it into local state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			app, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			changed := app.Pull(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "changed: %v\n", changed)
			return nil
		},
	}
}

func pushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Overwrite the remote snapshot from local state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			app, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			return app.Push(cmd.Context())
		},
	}
}

func devkvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devkv",
		Short: "Run an in-memory emulator of the cloud KV endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			log := logger.New("devkv")
			srv := devkv.NewServer(log)
			log.Info().Str("addr", cfg.DevKVAddr()).Msg("devkv listening")
			return http.ListenAndServe(cfg.DevKVAddr(), srv.Handler())
		},
	}
}
