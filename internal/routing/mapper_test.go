package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/pkg/errors"
)

func TestModelConfigFor_TierMapping(t *testing.T) {
	tests := []struct {
		name          string
		cls           Classification
		expectedModel string
		expectedTemp  float64
	}{
		{
			name:          "small mechanical",
			cls:           Classification{Tier: TierSmall},
			expectedModel: ModelSmall,
			expectedTemp:  0.3,
		},
		{
			name:          "large without reasoning",
			cls:           Classification{Tier: TierLarge},
			expectedModel: ModelLarge,
			expectedTemp:  0.3,
		},
		{
			name:          "large with reasoning",
			cls:           Classification{Tier: TierLarge, RequiresReasoning: true},
			expectedModel: ModelLarge,
			expectedTemp:  0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ModelConfigFor(tt.cls, "test-key")
			require.NoError(t, err)

			assert.Equal(t, tt.expectedModel, cfg.Model)
			assert.Equal(t, tt.expectedTemp, cfg.Temperature)
			assert.Equal(t, "test-key", cfg.APIKey)
		})
	}
}

func TestModelConfigFor_MissingCredential(t *testing.T) {
	_, err := ModelConfigFor(Classification{Tier: TierSmall}, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}
