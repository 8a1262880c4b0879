package routing

import (
	"hermes/pkg/errors"
)

// Groq model identifiers for each routing tier.
const (
	ModelSmall = "llama-3.1-8b-instant"
	ModelLarge = "llama-3.3-70b-versatile"
)

// Sampling temperatures per task kind: reasoning-heavy tasks get headroom for
// strategic variation, mechanical tasks stay near-deterministic.
const (
	temperatureReasoning  = 0.7
	temperatureMechanical = 0.3
)

// ModelConfig is the concrete model configuration derived from a
// classification: which model to call, how to sample, and with what credential.
type ModelConfig struct {
	Model       string
	Temperature float64
	APIKey      string
}

// ModelConfigFor maps a classification onto a model configuration. The only
// failure condition is a missing credential; the error wraps
// errors.ErrConfiguration and propagates to the caller unchanged.
func ModelConfigFor(cls Classification, apiKey string) (ModelConfig, error) {
	if apiKey == "" {
		return ModelConfig{}, errors.Wrap(errors.ErrConfiguration, "groq API key is not configured")
	}

	model := ModelSmall
	if cls.Tier == TierLarge {
		model = ModelLarge
	}

	temperature := temperatureMechanical
	if cls.RequiresReasoning {
		temperature = temperatureReasoning
	}

	return ModelConfig{
		Model:       model,
		Temperature: temperature,
		APIKey:      apiKey,
	}, nil
}
