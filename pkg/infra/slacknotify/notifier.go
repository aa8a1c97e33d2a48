// Package slacknotify implements the Notifier over the Slack Web API.
package slacknotify

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/t-okuda/relwatch/pkg/domain/interfaces"
)

type notifier struct {
	client  *slack.Client
	channel string
}

// New creates a Notifier posting to the given channel with a bot token.
func New(token, channel string) interfaces.Notifier {
	return &notifier{
		client:  slack.New(token),
		channel: channel,
	}
}

// Send posts the message as plain text. Delivery is best-effort: callers log
// and discard the returned error, there is no retry.
func (n *notifier) Send(ctx context.Context, message string) error {
	_, _, err := n.client.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(message, false),
		slack.MsgOptionDisableLinkUnfurl(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post message", goerr.V("channel", n.channel))
	}
	return nil
}
