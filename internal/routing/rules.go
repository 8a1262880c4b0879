package routing

// Tier is one of two abstract capability levels a task can be served at.
// Small favors cost and latency, Large favors reasoning depth.
type Tier string

const (
	TierSmall Tier = "small"
	TierLarge Tier = "large"
)

// RoleRules holds the per-role keyword lists and the tier used when scoring
// lands in the medium band.
type RoleRules struct {
	DefaultTier   Tier
	LargeKeywords []string // push toward the large tier, set the reasoning flag
	SmallKeywords []string // push toward the small tier
}

// RuleSet is the full classification rules table: role-specific keyword sets
// plus two role-independent phrase lists.
type RuleSet struct {
	Roles map[string]RoleRules

	// ComplexityPhrases always signal the large tier and set the reasoning flag.
	ComplexityPhrases []string

	// SimplePhrases always push toward the small tier.
	SimplePhrases []string
}

// DefaultRuleSet returns the production routing rules. The phrase lists and
// scoring arithmetic are load-bearing: matching is plain substring search and
// overlapping phrases may double-count, which is accepted heuristic noise.
// Do not reorder or rephrase entries without re-checking routing behavior.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Roles: map[string]RoleRules{
			"pricer": {
				DefaultTier:   TierLarge,
				LargeKeywords: []string{"pricing", "calculation", "arbitrage", "profit", "complex", "strategy", "analysis"},
				SmallKeywords: []string{"format", "display", "simple"},
			},
			"market_analyzer": {
				DefaultTier:   TierSmall,
				LargeKeywords: []string{"analyze", "predict", "complex analysis", "strategy", "reasoning"},
				SmallKeywords: []string{"fetch", "format", "json", "data", "translate", "parse", "convert"},
			},
			"executive": {
				DefaultTier:   TierSmall,
				LargeKeywords: []string{"strategy", "complex decision", "analyze", "evaluate"},
				SmallKeywords: []string{"coordinate", "delegate", "status", "simple", "route", "manage"},
			},
			"inventory": {
				DefaultTier:   TierSmall,
				LargeKeywords: []string{"complex analysis", "strategy", "prediction"},
				SmallKeywords: []string{"balance", "update", "check", "simple", "rule", "threshold"},
			},
		},
		ComplexityPhrases: []string{
			"analyze complex", "strategic decision", "calculate profit",
			"arbitrage opportunity", "risk assessment", "multi-step reasoning",
			"evaluate strategy", "complex analysis", "advanced calculation",
		},
		SimplePhrases: []string{
			"fetch data", "format json", "parse response", "convert format",
			"simple check", "status update", "basic coordination", "rule-based",
			"threshold check", "simple calculation",
		},
	}
}
