package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/internal/adapters/ai"
	"hermes/internal/routing"
)

type stubLLM struct {
	model       string
	temperature float64
}

func (s *stubLLM) Model() string        { return s.model }
func (s *stubLLM) Temperature() float64 { return s.temperature }

func newTestLLMRouter(t *testing.T) *LLMRouter {
	t.Helper()

	router, err := routing.NewRouter(routing.Config{
		APIKey: "test-key",
		Factory: func(model string, temperature float64) (routing.LLM, error) {
			return &stubLLM{model: model, temperature: temperature}, nil
		},
	})
	require.NoError(t, err)

	return NewLLMRouter(router, "test-key")
}

func TestLLMRouter_PerRoleMethodsPinTheRole(t *testing.T) {
	lr := newTestLLMRouter(t)

	tests := []struct {
		name         string
		route        func() (routing.RouteResult, error)
		expectedRole string
	}{
		{"pricer", func() (routing.RouteResult, error) { return lr.ForPricer("Calculate arbitrage opportunity") }, "pricer"},
		{"market analyzer", func() (routing.RouteResult, error) { return lr.ForMarketAnalyzer("fetch data") }, "market_analyzer"},
		{"executive", func() (routing.RouteResult, error) { return lr.ForExecutive("coordinate the crew") }, "executive"},
		{"inventory", func() (routing.RouteResult, error) { return lr.ForInventory("check balance") }, "inventory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.route()
			require.NoError(t, err)

			assert.Equal(t, tt.expectedRole, result.Classification.Role)
		})
	}
}

func TestLLMRouter_DefaultUsesRoleDefaultTier(t *testing.T) {
	lr := newTestLLMRouter(t)

	pricer, err := lr.Default(AgentPricer)
	require.NoError(t, err)
	assert.Equal(t, routing.TierLarge, pricer.Classification.Tier)
	assert.Equal(t, routing.ComplexityMedium, pricer.Classification.Complexity)

	executive, err := lr.Default(AgentExecutive)
	require.NoError(t, err)
	assert.Equal(t, routing.TierSmall, executive.Classification.Tier)
}

func TestLLMRouter_EmbedderPicksModelByFlag(t *testing.T) {
	lr := newTestLLMRouter(t)

	small := lr.Embedder(true)
	assert.Equal(t, ai.ProviderNameGroq, small.Provider)
	assert.Equal(t, routing.ModelSmall, small.Model)
	assert.Equal(t, "test-key", small.APIKey)

	large := lr.Embedder(false)
	assert.Equal(t, routing.ModelLarge, large.Model)
}
