package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakebot/lakebot/internal/config"
	"github.com/lakebot/lakebot/internal/databricks"
	"github.com/lakebot/lakebot/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the Databricks administration tools the agent can call",
	RunE:  runTools,
}

func runTools(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Listing needs no live workspace; the client is only dialed when a
	// tool executes.
	registry, err := tools.NewCatalog(databricks.NewClient(cfg.Databricks))
	if err != nil {
		return err
	}

	fmt.Printf("%d tools registered:\n\n", registry.Len())
	for _, t := range registry.All() {
		fmt.Printf("  %-28s %s\n", t.Name(), t.Description())
		if req := requiredParams(t.Parameters()); len(req) > 0 {
			fmt.Printf("  %-28s required: %s\n", "", strings.Join(req, ", "))
		}
	}
	return nil
}

func requiredParams(raw json.RawMessage) []string {
	var schema struct {
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil
	}
	return schema.Required
}
