package agents

import (
	"hermes/internal/adapters/ai"
	"hermes/internal/routing"
	"hermes/pkg/logger"
)

// LLMRouter hands out tier-routed LLM handles to the crew pipeline. It is a
// thin per-role convenience layer over the routing engine; all decision logic
// lives in the router itself.
type LLMRouter struct {
	router  *routing.Router
	groqKey string
	log     *logger.Logger
}

// NewLLMRouter wraps an explicitly constructed router instance.
func NewLLMRouter(router *routing.Router, groqKey string) *LLMRouter {
	return &LLMRouter{
		router:  router,
		groqKey: groqKey,
		log:     logger.Get().With("component", "llm_router"),
	}
}

// ForAgent routes a task for the given agent role.
func (lr *LLMRouter) ForAgent(agentType AgentType, task, taskContext string) (routing.RouteResult, error) {
	return lr.router.Route(string(agentType), task, taskContext)
}

// Default returns the role's default-tier handle, without task-specific routing.
func (lr *LLMRouter) Default(agentType AgentType) (routing.RouteResult, error) {
	return lr.ForAgent(agentType, "", "")
}

// ForPricer routes a pricing task.
func (lr *LLMRouter) ForPricer(task string) (routing.RouteResult, error) {
	return lr.ForAgent(AgentPricer, task, "")
}

// ForMarketAnalyzer routes a market analysis task.
func (lr *LLMRouter) ForMarketAnalyzer(task string) (routing.RouteResult, error) {
	return lr.ForAgent(AgentMarketAnalyzer, task, "")
}

// ForExecutive routes a coordination task.
func (lr *LLMRouter) ForExecutive(task string) (routing.RouteResult, error) {
	return lr.ForAgent(AgentExecutive, task, "")
}

// ForInventory routes an inventory management task.
func (lr *LLMRouter) ForInventory(task string) (routing.RouteResult, error) {
	return lr.ForAgent(AgentInventory, task, "")
}

// EmbedderConfig selects the embedding model by an explicit flag rather than
// classification; embeddings are a fixed-cost subsystem, not per-task routing.
type EmbedderConfig struct {
	Provider string
	Model    string
	APIKey   string
}

// Embedder returns the embedding configuration. Small is the default choice
// to save tokens.
func (lr *LLMRouter) Embedder(useSmall bool) EmbedderConfig {
	model := routing.ModelLarge
	if useSmall {
		model = routing.ModelSmall
	}

	return EmbedderConfig{
		Provider: ai.ProviderNameGroq,
		Model:    model,
		APIKey:   lr.groqKey,
	}
}

// LogStats logs the current routing statistics snapshot.
func (lr *LLMRouter) LogStats() {
	report := lr.router.UsageReport()

	lr.log.Info("Model router statistics",
		"total_requests", report.TotalRequests,
		"small_usage", report.SmallCount,
		"large_usage", report.LargeCount,
		"small_percent", report.SmallPercent,
		"large_percent", report.LargePercent,
		"estimated_savings_percent", report.EstimatedSavingsPercent)
}
