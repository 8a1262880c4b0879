package ai

// ProviderNameGroq identifies the Groq provider in configs and logs.
const ProviderNameGroq = "groq"

// ModelInfo describes the capabilities and pricing of a model.
type ModelInfo struct {
	Name            string  // Provider-specific model identifier
	Family          string  // Family/category name (e.g., "llama-3.3")
	MaxTokens       int     // Maximum context length
	InputCostPer1K  float64 // USD per 1K input tokens
	OutputCostPer1K float64 // USD per 1K output tokens
}

// GroqModels returns metadata for the two routing tiers served by Groq.
func GroqModels() []ModelInfo {
	return []ModelInfo{
		{
			Name:            "llama-3.1-8b-instant",
			Family:          "llama-3.1",
			MaxTokens:       131072,
			InputCostPer1K:  0.00005,
			OutputCostPer1K: 0.00008,
		},
		{
			Name:            "llama-3.3-70b-versatile",
			Family:          "llama-3.3",
			MaxTokens:       131072,
			InputCostPer1K:  0.00059,
			OutputCostPer1K: 0.00079,
		},
	}
}

// ModelInfoFor returns catalog metadata for a model by name.
func ModelInfoFor(name string) (ModelInfo, bool) {
	for _, m := range GroqModels() {
		if m.Name == name {
			return m, true
		}
	}
	return ModelInfo{}, false
}
