package agents

// AgentType enumerates the crew roles the model router recognizes.
type AgentType string

const (
	AgentPricer         AgentType = "pricer"
	AgentMarketAnalyzer AgentType = "market_analyzer"
	AgentExecutive      AgentType = "executive"
	AgentInventory      AgentType = "inventory"
)
