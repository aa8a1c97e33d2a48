package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

var errMissingSlackConfig = goerr.New("slack-token and slack-channel are required")

// Slack holds chat notification configuration. Both values must be present
// at startup unless running in dry-run mode; commands validate this before
// any check runs.
type Slack struct {
	Token   string `masq:"secret"`
	Channel string
}

// Validate reports a fatal configuration error when either value is missing.
func (c *Slack) Validate() error {
	if c.Token == "" || c.Channel == "" {
		return errMissingSlackConfig
	}
	return nil
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("RELWATCH_SLACK_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for notifications",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("RELWATCH_SLACK_CHANNEL"),
		},
	}
}
