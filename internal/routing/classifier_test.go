package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Scenarios(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	tests := []struct {
		name              string
		role              string
		task              string
		expectedTier      Tier
		expectedLabel     Complexity
		requiresReasoning bool
	}{
		{
			name:          "mechanical fetch and convert routes small",
			role:          "market_analyzer",
			task:          "Fetch market data and convert to JSON format",
			expectedTier:  TierSmall,
			expectedLabel: ComplexityLow,
		},
		{
			name:              "complex market analysis routes large",
			role:              "market_analyzer",
			task:              "Perform complex analysis of market trends and predict movements",
			expectedTier:      TierLarge,
			expectedLabel:     ComplexityHigh,
			requiresReasoning: true,
		},
		{
			name:              "arbitrage calculation routes large",
			role:              "pricer",
			task:              "Calculate arbitrage opportunity between markets with profit analysis",
			expectedTier:      TierLarge,
			expectedLabel:     ComplexityHigh,
			requiresReasoning: true,
		},
		{
			name:          "coordination task stays on role default small",
			role:          "executive",
			task:          "Coordinate task delegation between agents",
			expectedTier:  TierSmall,
			expectedLabel: ComplexityMedium,
		},
		{
			name:          "balance check routes small",
			role:          "inventory",
			task:          "Check current balance and update inventory",
			expectedTier:  TierSmall,
			expectedLabel: ComplexityLow,
		},
		{
			name:              "strategic pricing routes large",
			role:              "pricer",
			task:              "Analyze complex pricing strategy for high-frequency trading",
			expectedTier:      TierLarge,
			expectedLabel:     ComplexityHigh,
			requiresReasoning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := classifier.Classify(tt.role, tt.task, "")

			assert.Equal(t, tt.expectedTier, cls.Tier)
			assert.Equal(t, tt.expectedLabel, cls.Complexity)
			assert.Equal(t, tt.requiresReasoning, cls.RequiresReasoning)
		})
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	first := classifier.Classify("pricer", "Calculate arbitrage opportunity", "spot vs futures")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifier.Classify("pricer", "Calculate arbitrage opportunity", "spot vs futures"))
	}
}

func TestClassifier_UnknownRoleFallsBackToLarge(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	cls := classifier.Classify("nonexistent_role", "", "")

	assert.Equal(t, TierLarge, cls.Tier)
	assert.Equal(t, ComplexityMedium, cls.Complexity)
	assert.Equal(t, 0.6, cls.Confidence)
	assert.False(t, cls.RequiresReasoning)
}

func TestClassifier_ReasoningDominatesSimpleIndicators(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	// One complexity phrase buried under every simple indicator: the net
	// score is deeply negative but the reasoning flag still wins.
	task := "risk assessment after you fetch data, format json, parse response, convert format, " +
		"simple check, status update, basic coordination, rule-based threshold check, simple calculation"

	cls := classifier.Classify("market_analyzer", task, "")

	require.True(t, cls.RequiresReasoning)
	assert.Equal(t, TierLarge, cls.Tier)
	assert.Equal(t, ComplexityHigh, cls.Complexity)
	assert.GreaterOrEqual(t, cls.Confidence, 0.6)
}

func TestClassifier_ConfidenceBounds(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	inputs := []struct {
		role string
		task string
	}{
		{"pricer", "Calculate arbitrage opportunity with complex analysis, risk assessment, evaluate strategy, advanced calculation and multi-step reasoning for profit"},
		{"market_analyzer", "fetch data format json parse response convert format translate"},
		{"executive", ""},
		{"unknown", "anything at all"},
		{"inventory", "threshold check rule-based simple check status update"},
	}

	for _, in := range inputs {
		cls := classifier.Classify(in.role, in.task, "")
		assert.GreaterOrEqual(t, cls.Confidence, 0.0, "role %s", in.role)
		assert.LessOrEqual(t, cls.Confidence, 0.9, "role %s", in.role)
	}
}

func TestClassifier_ContextContributesToScoring(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	without := classifier.Classify("market_analyzer", "Look at the order books", "")
	withCtx := classifier.Classify("market_analyzer", "Look at the order books", "complex analysis of liquidity required")

	assert.Equal(t, TierSmall, without.Tier)
	assert.Equal(t, TierLarge, withCtx.Tier)
	assert.True(t, withCtx.RequiresReasoning)
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, "market_analyzer", NormalizeRole("Market Analyzer"))
	assert.Equal(t, "market_analyzer", NormalizeRole("  MARKET   ANALYZER  "))
	assert.Equal(t, "pricer", NormalizeRole("pricer"))

	classifier := NewClassifier(DefaultRuleSet())
	spaced := classifier.Classify("Market Analyzer", "Fetch market data and convert to JSON format", "")
	plain := classifier.Classify("market_analyzer", "Fetch market data and convert to JSON format", "")

	assert.Equal(t, plain, spaced)
}
