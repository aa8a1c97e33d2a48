package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/t-okuda/relwatch/pkg/cli/config"
	"github.com/t-okuda/relwatch/pkg/domain/interfaces"
	"github.com/t-okuda/relwatch/pkg/domain/model"
	"github.com/t-okuda/relwatch/pkg/infra/console"
	"github.com/t-okuda/relwatch/pkg/infra/fetch"
	"github.com/t-okuda/relwatch/pkg/infra/kv"
	"github.com/t-okuda/relwatch/pkg/infra/slacknotify"
	"github.com/t-okuda/relwatch/pkg/usecase"
)

func cmdCheck() *cli.Command {
	var (
		slackCfg   config.Slack
		storeCfg   config.Store
		sourcesCfg config.Sources
		dryRun     bool
	)

	flags := append(slackCfg.Flags(), storeCfg.Flags()...)
	flags = append(flags, sourcesCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "Use an in-memory store and print notifications instead of sending",
		Destination: &dryRun,
		Sources:     cli.EnvVars("RELWATCH_DRY_RUN"),
	})

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Run all source checks once and exit",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sources, err := sourcesCfg.Load()
			if err != nil {
				return err
			}

			var (
				store    interfaces.Store
				closer   func() error
				notifier interfaces.Notifier
			)
			if dryRun {
				store = kv.NewMemory()
				closer = func() error { return nil }
				notifier = console.New()
			} else {
				if err := slackCfg.Validate(); err != nil {
					return err
				}
				store, closer, err = storeCfg.Build(ctx)
				if err != nil {
					return err
				}
				notifier = slacknotify.New(slackCfg.Token, slackCfg.Channel)
			}
			defer closer()

			runner := usecase.NewRunner(usecase.NewCheck(fetch.New(), store), notifier, sources)
			summary := runner.RunOnce(ctx)

			printSummary(summary)
			return nil
		},
	}
}

func printSummary(summary *model.RunSummary) {
	var (
		green = color.New(color.FgGreen)
		red   = color.New(color.FgRed)
		faint = color.New(color.Faint)
	)

	for _, res := range summary.Results {
		switch res.Status {
		case model.StatusUpdated:
			green.Printf("updated    %s\n", res.Source.Key)
		case model.StatusFailed:
			red.Printf("failed     %s (%v)\n", res.Source.Key, res.Err)
		default:
			faint.Printf("unchanged  %s\n", res.Source.Key)
		}
	}

	fmt.Printf("%d updated, %d unchanged, %d failed\n",
		summary.Count(model.StatusUpdated),
		summary.Count(model.StatusUnchanged),
		summary.Count(model.StatusFailed),
	)
}
