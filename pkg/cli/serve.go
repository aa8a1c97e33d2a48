package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/t-okuda/relwatch/pkg/cli/config"
	controller "github.com/t-okuda/relwatch/pkg/controller/http"
	"github.com/t-okuda/relwatch/pkg/infra/fetch"
	"github.com/t-okuda/relwatch/pkg/infra/slacknotify"
	"github.com/t-okuda/relwatch/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		slackCfg   config.Slack
		storeCfg   config.Store
		sourcesCfg config.Sources
		addr       string
		interval   time.Duration
	)

	flags := append(slackCfg.Flags(), storeCfg.Flags()...)
	flags = append(flags, sourcesCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Health endpoint address",
			Value:       "localhost:8080",
			Destination: &addr,
			Sources:     cli.EnvVars("RELWATCH_ADDR"),
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Time between check cycles",
			Value:       10 * time.Minute,
			Destination: &interval,
			Sources:     cli.EnvVars("RELWATCH_INTERVAL"),
		},
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run checks periodically with a health endpoint",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := slackCfg.Validate(); err != nil {
				return err
			}

			sources, err := sourcesCfg.Load()
			if err != nil {
				return err
			}

			store, closer, err := storeCfg.Build(ctx)
			if err != nil {
				return err
			}
			defer closer()

			notifier := slacknotify.New(slackCfg.Token, slackCfg.Channel)
			runner := usecase.NewRunner(usecase.NewCheck(fetch.New(), store), notifier, sources)

			logger.Info("Starting relwatch",
				slog.String("addr", addr),
				slog.Duration("interval", interval),
				slog.Int("sources", len(sources)),
			)

			server, err := controller.NewServer(ctx, controller.WithAddr(addr))
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			runner.RunOnce(ctx)

		loop:
			for {
				select {
				case <-ticker.C:
					runner.RunOnce(ctx)
				case <-ctx.Done():
					logger.Info("Context cancelled, shutting down...")
					break loop
				case sig := <-sigChan:
					logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
					break loop
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
