package channels

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lakebot/lakebot/internal/bus"
)

// CLIChannel reads prompts from an input stream and writes answers back to
// an output stream. In the serve command it is wired to stdin/stdout so an
// operator can talk to the agent from the terminal the gateway runs in.
type CLIChannel struct {
	Base
	in  io.Reader
	out io.Writer
}

// NewCLIChannel creates a CLIChannel on stdin/stdout.
func NewCLIChannel(mb *bus.MessageBus) *CLIChannel {
	return &CLIChannel{
		Base: NewBase("cli", mb, nil),
		in:   os.Stdin,
		out:  os.Stdout,
	}
}

func (c *CLIChannel) Name() string { return "cli" }

// Start reads lines until EOF or cancellation. Blank lines are skipped.
func (c *CLIChannel) Start(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				<-ctx.Done()
				return ctx.Err()
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			c.HandleMessage("operator", "console", text, nil)
		}
	}
}

// Send prints the answer to the output stream.
func (c *CLIChannel) Send(_ context.Context, msg bus.OutboundMessage) error {
	_, err := fmt.Fprintf(c.out, "\n%s\n\n", msg.Content)
	return err
}
