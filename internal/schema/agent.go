package schema

// AgentSettings holds the per-request behaviour knobs for the agent loop.
type AgentSettings struct {
	Model       string
	MaxTurns    int // planner invocations before the loop gives up
	Temperature float64
	MaxTokens   int
}

func NewAgentSettings(model string, maxTurns int, temperature float64, maxTokens int) AgentSettings {
	return AgentSettings{
		Model:       model,
		MaxTurns:    maxTurns,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}
