package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lakebot/lakebot/internal/channels"
	"github.com/lakebot/lakebot/internal/config"
	"github.com/lakebot/lakebot/internal/dependency"
)

var serveInteractive bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gateway, chat channels, and scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVarP(&serveInteractive, "interactive", "i", false, "Also accept prompts on stdin")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	channelMgr := channels.NewManager(cfg, container.MessageBus(), serveInteractive)
	if enabled := channelMgr.EnabledChannels(); len(enabled) > 0 {
		fmt.Printf("Channels enabled: %s\n", strings.Join(enabled, ", "))
	}
	fmt.Printf("Gateway listening on %s\n", container.Gateway().Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return container.AgentLoop().Run(gctx) })
	g.Go(func() error { return container.Gateway().Run(gctx) })
	g.Go(func() error { return channelMgr.StartAll(gctx) })
	g.Go(func() error { return container.Scheduler().Start(gctx) })

	fmt.Println("lakebot running. Press Ctrl+C to stop.")

	if err := g.Wait(); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "serve error: %v\n", err)
		return err
	}
	fmt.Println("\nShutdown complete.")
	return nil
}
