package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakebot/lakebot/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show lakebot configuration status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Println("lakebot status")
	fmt.Println()

	_, statErr := os.Stat(cfgPath)
	fmt.Printf("Config:     %s %s\n", cfgPath, mark(statErr == nil))

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	fmt.Printf("Workspace:  %s %s\n", orUnset(cfg.Databricks.Host), mark(cfg.Databricks.Host != "" && cfg.Databricks.Token != ""))
	fmt.Printf("Model:      %s\n", cfg.Agent.Model)
	fmt.Printf("LLM key:    %s\n", mark(cfg.LLM.APIKey != ""))
	fmt.Printf("Gateway:    %s:%d\n", cfg.Gateway.Host, cfg.Gateway.Port)
	fmt.Println()

	fmt.Println("Channels:")
	fmt.Printf("  slack      %s\n", mark(cfg.Channels.Slack.Enabled))
	fmt.Printf("  telegram   %s\n", mark(cfg.Channels.Telegram.Enabled))

	if len(cfg.Schedules) > 0 {
		fmt.Println()
		fmt.Println("Schedules:")
		for _, s := range cfg.Schedules {
			fmt.Printf("  %-16s %s\n", s.Cron, s.Prompt)
		}
	}
	return nil
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
