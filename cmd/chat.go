package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lakebot/lakebot/internal/agent"
	"github.com/lakebot/lakebot/internal/bus"
	"github.com/lakebot/lakebot/internal/config"
	"github.com/lakebot/lakebot/internal/dependency"
)

var chatMessage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the agent from the terminal",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Send a single message and exit")
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
	":q":    true,
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	if chatMessage != "" {
		return runSingleMessage(container.AgentLoop())
	}
	return runInteractive(container.AgentLoop(), container.MessageBus())
}

// runSingleMessage sends one message to the agent and prints the answer.
func runSingleMessage(loop *agent.AgentLoop) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fmt.Fprintln(os.Stderr, "  thinking...")
	printResponse(loop.ProcessDirect(ctx, chatMessage))
	return nil
}

// runInteractive starts the REPL loop: reads lines from stdin, sends each to
// the agent via the bus, and waits for each reply before prompting again.
func runInteractive(loop *agent.AgentLoop, msgBus *bus.MessageBus) error {
	fmt.Println("Interactive mode (type 'exit' or Ctrl+C to quit)")
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listenForSignals(cancel)

	go func() { _ = loop.Run(ctx) }()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")

		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exitCommands[strings.ToLower(line)] {
			fmt.Println("Goodbye!")
			return nil
		}

		sendAndWait(ctx, msgBus, line)
	}
}

// listenForSignals cancels ctx on SIGINT or SIGTERM and exits.
func listenForSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()
}

// sendAndWait pushes a message onto the inbound bus and blocks until the
// agent publishes the reply (or ctx is cancelled).
func sendAndWait(ctx context.Context, msgBus *bus.MessageBus, content string) {
	msgBus.Inbound <- bus.NewInboundMessage("cli", "operator", "console", content)

	select {
	case msg := <-msgBus.Outbound:
		if msg.Content != "" {
			printResponse(msg.Content)
		}
	case <-ctx.Done():
	}
}

func printResponse(text string) {
	fmt.Printf("\nlakebot\n%s\n\n", text)
}
