package routing

import (
	"math"
	"strings"
)

// Complexity labels a task's estimated difficulty band.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Classification is the routing decision record for one task.
type Classification struct {
	Role              string
	Complexity        Complexity
	RequiresReasoning bool
	Tier              Tier
	Confidence        float64 // always within [0, 0.9]
}

// Classifier scores task text against a rules table to pick a model tier.
// It is stateless: repeated calls with identical inputs yield identical
// classifications, and it is safe for concurrent use.
type Classifier struct {
	rules RuleSet
}

// NewClassifier constructs a classifier over the given rules table.
func NewClassifier(rules RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Classify scores the task description plus optional context (empty string
// when absent) and decides the serving tier.
//
// Scoring: +2 per complexity phrase (sets the reasoning flag), -1 per simple
// phrase, +1 per role large-keyword (sets the reasoning flag), -1 per role
// small-keyword. A reasoning-flagged task always lands on the large tier, no
// matter how many small indicators also match.
func (c *Classifier) Classify(role, task, taskContext string) Classification {
	normalized := NormalizeRole(role)

	roleRules, known := c.rules.Roles[normalized]
	defaultTier := TierLarge // unknown roles fail open toward richer capability
	if known {
		defaultTier = roleRules.DefaultTier
	}

	fullText := strings.ToLower(task + " " + taskContext)

	score := 0
	requiresReasoning := false

	for _, phrase := range c.rules.ComplexityPhrases {
		if strings.Contains(fullText, phrase) {
			score += 2
			requiresReasoning = true
		}
	}

	for _, phrase := range c.rules.SimplePhrases {
		if strings.Contains(fullText, phrase) {
			score--
		}
	}

	if known {
		for _, keyword := range roleRules.LargeKeywords {
			if strings.Contains(fullText, keyword) {
				score++
				requiresReasoning = true
			}
		}
		for _, keyword := range roleRules.SmallKeywords {
			if strings.Contains(fullText, keyword) {
				score--
			}
		}
	}

	cls := Classification{
		Role:              normalized,
		RequiresReasoning: requiresReasoning,
	}

	switch {
	case score > 1 || requiresReasoning:
		cls.Tier = TierLarge
		cls.Complexity = ComplexityHigh
		// Score can be negative here when the reasoning flag forced the
		// large tier, so clamp to the medium-band floor as well.
		cls.Confidence = clamp(0.6+float64(score)*0.1, 0.6, 0.9)
	case score < -1:
		cls.Tier = TierSmall
		cls.Complexity = ComplexityLow
		cls.Confidence = math.Min(0.9, 0.7+math.Abs(float64(score))*0.05)
	default:
		cls.Tier = defaultTier
		cls.Complexity = ComplexityMedium
		cls.Confidence = 0.6
	}

	return cls
}

// NormalizeRole lowercases a role name and replaces whitespace runs with
// underscores ("Market Analyzer" -> "market_analyzer").
func NormalizeRole(role string) string {
	return strings.Join(strings.Fields(strings.ToLower(role)), "_")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
