// Package config defines the lakebot configuration schema and loader.
// JSON keys use camelCase. Workspace credentials and the LLM endpoint are
// explicit configuration passed to the components that need them; nothing
// reads process-wide globals after startup.
package config

import (
	"os"
	"path/filepath"
)

// DatabricksConfig holds the workspace the administrative tools talk to.
type DatabricksConfig struct {
	// Host is the workspace base URL, e.g. "https://adb-123.4.azuredatabricks.net".
	Host string `json:"host"`
	// Token is the personal access token used as the bearer credential.
	Token string `json:"token"`
}

// LLMConfig holds credentials for the chat-completion endpoint.
type LLMConfig struct {
	APIKey       string            `json:"apiKey"`
	APIBase      string            `json:"apiBase,omitempty"`
	ExtraHeaders map[string]string `json:"extraHeaders,omitempty"`
}

// AgentDefaults holds default values for agent behaviour.
type AgentDefaults struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
	MaxTurns    int     `json:"maxTurns"`
}

func defaultAgentDefaults() AgentDefaults {
	return AgentDefaults{
		Model:       "databricks-gpt-oss-20b",
		MaxTokens:   8192,
		Temperature: 0,
		MaxTurns:    20,
	}
}

// SlackConfig configures the Slack ops channel (Socket Mode).
type SlackConfig struct {
	Enabled   bool     `json:"enabled"`
	BotToken  string   `json:"botToken"`
	AppToken  string   `json:"appToken"`
	AllowFrom []string `json:"allowFrom"`
}

// TelegramConfig configures the Telegram ops channel.
type TelegramConfig struct {
	Enabled   bool     `json:"enabled"`
	Token     string   `json:"token"`
	AllowFrom []string `json:"allowFrom"`
}

// ChannelsConfig groups the chat channel configurations.
type ChannelsConfig struct {
	Slack    SlackConfig    `json:"slack"`
	Telegram TelegramConfig `json:"telegram"`
}

// GatewayConfig configures the HTTP gateway.
type GatewayConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func defaultGatewayConfig() GatewayConfig {
	return GatewayConfig{Host: "127.0.0.1", Port: 18990}
}

// ScheduleConfig is one standing prompt run on a cron expression.
// Each firing is an ordinary one-shot request through the adapter.
// When Channel and ChatID are set the answer is delivered there; otherwise
// it is only logged.
type ScheduleConfig struct {
	Cron    string `json:"cron"`
	Prompt  string `json:"prompt"`
	Channel string `json:"channel,omitempty"`
	ChatID  string `json:"chatId,omitempty"`
}

// Config is the root configuration object.
type Config struct {
	Databricks DatabricksConfig `json:"databricks"`
	LLM        LLMConfig        `json:"llm"`
	Agent      AgentDefaults    `json:"agent"`
	Channels   ChannelsConfig   `json:"channels"`
	Gateway    GatewayConfig    `json:"gateway"`
	Schedules  []ScheduleConfig `json:"schedules,omitempty"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		Agent:   defaultAgentDefaults(),
		Gateway: defaultGatewayConfig(),
		Channels: ChannelsConfig{
			Slack:    SlackConfig{AllowFrom: []string{}},
			Telegram: TelegramConfig{AllowFrom: []string{}},
		},
	}
}

// applyEnv overlays environment variables onto cfg. Environment wins over
// file values so the same config file can be shared across workspaces.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABRICKS_HOST"); v != "" {
		c.Databricks.Host = v
	}
	if v := os.Getenv("DATABRICKS_TOKEN"); v != "" {
		c.Databricks.Token = v
	}
	if v := os.Getenv("LAKEBOT_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LAKEBOT_API_BASE"); v != "" {
		c.LLM.APIBase = v
	}
}

// ConfigPath returns the default configuration file path: ~/.lakebot/config.json.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// DataDir returns the lakebot data directory: ~/.lakebot.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lakebot"
	}
	return filepath.Join(home, ".lakebot")
}

// PersonaDir returns the directory holding persona overlay files.
func PersonaDir() string {
	return filepath.Join(DataDir(), "persona")
}
