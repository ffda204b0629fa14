package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lakebot/lakebot/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize configuration and the persona directory",
	RunE:  runOnboard,
}

func runOnboard(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config already exists at %s\n", cfgPath)
		fmt.Print("Press Enter to refresh (keep existing values) or Ctrl+C to cancel: ")
		fmt.Scanln()
		existing, loadErr := config.Load(cfgPath)
		if loadErr != nil {
			def := config.DefaultConfig()
			existing = &def
		}
		if err := config.Save(existing, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Config refreshed at %s\n", cfgPath)
	} else {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Created config at %s\n", cfgPath)
	}

	personaDir := config.PersonaDir()
	if err := os.MkdirAll(personaDir, 0o755); err != nil {
		return fmt.Errorf("create persona dir: %w", err)
	}
	fmt.Printf("✓ Persona directory at %s\n", personaDir)

	writePersonaTemplate(personaDir)

	fmt.Println()
	fmt.Println("lakebot is ready!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Set your workspace in %s or export DATABRICKS_HOST / DATABRICKS_TOKEN\n", cfgPath)
	fmt.Println("  2. Add the model endpoint API key (LAKEBOT_API_KEY)")
	fmt.Println("  3. Chat: lakebot chat -m \"list my clusters\"")
	return nil
}

func writePersonaTemplate(personaDir string) {
	path := filepath.Join(personaDir, "admin.md")
	if _, err := os.Stat(path); err == nil {
		return
	}
	template := `---
description: Default operations persona
always: false
---
Answer as a careful platform operator. Confirm destructive actions such as
deleting scopes or terminating clusters before suggesting them, and show the
exact identifiers you acted on.
`
	if err := os.WriteFile(path, []byte(template), 0o644); err == nil {
		fmt.Printf("✓ Persona template at %s\n", path)
	}
}
