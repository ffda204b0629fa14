// Package dependency wires the core lakebot services using go.uber.org/dig.
package dependency

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/lakebot/lakebot/internal/agent"
	"github.com/lakebot/lakebot/internal/bus"
	"github.com/lakebot/lakebot/internal/config"
	"github.com/lakebot/lakebot/internal/databricks"
	"github.com/lakebot/lakebot/internal/gateway"
	"github.com/lakebot/lakebot/internal/providers"
	"github.com/lakebot/lakebot/internal/scheduler"
	"github.com/lakebot/lakebot/internal/schema"
	"github.com/lakebot/lakebot/internal/tools"
)

// Container holds the resolved service singletons. Callers use the typed
// getter methods; they never need to import dig directly.
type Container struct {
	registry  *tools.Registry
	adapter   *agent.ResponsesAdapter
	loop      *agent.AgentLoop
	msgBus    *bus.MessageBus
	gateway   *gateway.Server
	scheduler *scheduler.Service
}

func (c *Container) Registry() *tools.Registry        { return c.registry }
func (c *Container) Adapter() *agent.ResponsesAdapter { return c.adapter }
func (c *Container) AgentLoop() *agent.AgentLoop      { return c.loop }
func (c *Container) MessageBus() *bus.MessageBus      { return c.msgBus }
func (c *Container) Gateway() *gateway.Server         { return c.gateway }
func (c *Container) Scheduler() *scheduler.Service    { return c.scheduler }

// New builds and wires all core services from cfg. Construction fails fast:
// an agent without a model endpoint or workspace credentials cannot serve
// any request, so those faults abort startup rather than being deferred.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	constructors := []any{
		func() *config.Config { return cfg },
		newDatabricksClient,
		newCatalog,
		newProvider,
		newSettings,
		newPromptBuilder,
		newRunner,
		newAdapter,
		newMessageBus,
		newAgentLoop,
		newGateway,
		newScheduler,
	}
	for _, c := range constructors {
		if err := d.Provide(c); err != nil {
			return nil, err
		}
	}

	var result *Container
	err := d.Invoke(func(
		registry *tools.Registry,
		adapter *agent.ResponsesAdapter,
		loop *agent.AgentLoop,
		msgBus *bus.MessageBus,
		gw *gateway.Server,
		sched *scheduler.Service,
	) {
		result = &Container{
			registry:  registry,
			adapter:   adapter,
			loop:      loop,
			msgBus:    msgBus,
			gateway:   gw,
			scheduler: sched,
		}
	})
	return result, err
}

func newDatabricksClient(cfg *config.Config) (*databricks.Client, error) {
	if cfg.Databricks.Host == "" || cfg.Databricks.Token == "" {
		return nil, fmt.Errorf("databricks host/token not configured — edit %s or set DATABRICKS_HOST / DATABRICKS_TOKEN", config.ConfigPath())
	}
	return databricks.NewClient(cfg.Databricks), nil
}

func newCatalog(client *databricks.Client) (*tools.Registry, error) {
	return tools.NewCatalog(client)
}

func newProvider(cfg *config.Config) (schema.LLMProvider, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for model %q — edit %s or set LAKEBOT_API_KEY", cfg.Agent.Model, config.ConfigPath())
	}
	return providers.New(providers.Params{
		APIKey:       cfg.LLM.APIKey,
		APIBase:      cfg.LLM.APIBase,
		ExtraHeaders: cfg.LLM.ExtraHeaders,
		DefaultModel: cfg.Agent.Model,
	}), nil
}

func newSettings(cfg *config.Config) schema.AgentSettings {
	return schema.NewAgentSettings(cfg.Agent.Model, cfg.Agent.MaxTurns, cfg.Agent.Temperature, cfg.Agent.MaxTokens)
}

func newPromptBuilder() *agent.PromptBuilder {
	return agent.NewPromptBuilder(config.PersonaDir())
}

func newRunner(provider schema.LLMProvider, registry *tools.Registry, settings schema.AgentSettings) *agent.LoopRunner {
	return agent.NewLoopRunner(provider, registry, settings)
}

func newAdapter(runner *agent.LoopRunner, prompt *agent.PromptBuilder) *agent.ResponsesAdapter {
	return agent.NewResponsesAdapter(runner, prompt)
}

func newMessageBus() *bus.MessageBus {
	return bus.NewMessageBus(100)
}

func newAgentLoop(adapter *agent.ResponsesAdapter, mb *bus.MessageBus) *agent.AgentLoop {
	return agent.NewAgentLoop(adapter, mb)
}

func newGateway(adapter *agent.ResponsesAdapter, cfg *config.Config) *gateway.Server {
	return gateway.NewServer(adapter, cfg.Gateway)
}

func newScheduler(cfg *config.Config, loop *agent.AgentLoop, mb *bus.MessageBus) *scheduler.Service {
	return scheduler.NewService(cfg.Schedules, loop.ProcessDirect, mb)
}
