// Package console implements a Notifier that prints messages to stdout,
// used by dry runs instead of the Slack API.
package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/t-okuda/relwatch/pkg/domain/interfaces"
)

type notifier struct {
	w io.Writer
}

// New creates a console notifier writing to stdout.
func New() interfaces.Notifier {
	return &notifier{w: os.Stdout}
}

// NewWithWriter creates a console notifier writing to w.
func NewWithWriter(w io.Writer) interfaces.Notifier {
	return &notifier{w: w}
}

// Send prints the message framed by a header line.
func (n *notifier) Send(_ context.Context, message string) error {
	header := color.New(color.FgCyan, color.Bold).Sprint("--- notification ---")
	if _, err := fmt.Fprintf(n.w, "%s\n%s\n\n", header, message); err != nil {
		return err
	}
	return nil
}
