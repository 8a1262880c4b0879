package ai

import (
	"hermes/pkg/logger"
)

// Factory constructs LLM handles with a shared credential and endpoint.
// Handle construction has fixed setup cost, so callers are expected to cache
// the result per model/temperature pair.
type Factory struct {
	apiKey  string
	baseURL string
	log     *logger.Logger
}

// NewFactory creates an LLM factory. An empty apiKey is allowed here so the
// process can start without credentials; construction fails per handle.
func NewFactory(apiKey, baseURL string) *Factory {
	return &Factory{
		apiKey:  apiKey,
		baseURL: baseURL,
		log:     logger.Get().With("component", "llm_factory"),
	}
}

// New constructs a fresh handle for the model/temperature pair.
func (f *Factory) New(model string, temperature float64) (*LLM, error) {
	llm, err := NewLLM(f.apiKey, f.baseURL, model, temperature)
	if err != nil {
		return nil, err
	}

	if info, ok := ModelInfoFor(model); ok {
		f.log.Debug("Constructed LLM handle",
			"model", model,
			"temperature", temperature,
			"max_tokens", info.MaxTokens,
			"input_cost_per_1k", info.InputCostPer1K)
	}

	return llm, nil
}
