package routing

import (
	"sync"

	"hermes/internal/metrics"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

// LLM is the computational resource handle produced for a routed task.
type LLM interface {
	Model() string
	Temperature() float64
}

// LLMFactory constructs a handle for a model/temperature pair. Construction
// is assumed to carry non-trivial fixed cost (connection setup, credential
// validation), so the router caches handles per pair.
type LLMFactory func(model string, temperature float64) (LLM, error)

// Config carries the router dependencies.
type Config struct {
	Rules   RuleSet // zero value falls back to DefaultRuleSet
	APIKey  string
	Factory LLMFactory
}

// Router composes the classifier and tier mapper, caches LLM handles per
// (model, temperature) pair and tracks aggregate usage statistics. All shared
// state sits behind one mutex, so it is safe for concurrent callers.
type Router struct {
	classifier *Classifier
	apiKey     string
	factory    LLMFactory

	mu    sync.Mutex
	cache map[cacheKey]LLM
	stats usageStats

	log *logger.Logger
}

type cacheKey struct {
	model       string
	temperature float64
}

// RouteResult bundles the outputs of one routing decision.
type RouteResult struct {
	Config         ModelConfig
	Classification Classification
	LLM            LLM
}

// NewRouter constructs a router with its own cache and zeroed statistics.
func NewRouter(cfg Config) (*Router, error) {
	if cfg.Factory == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "LLM factory is required")
	}

	rules := cfg.Rules
	if rules.Roles == nil {
		rules = DefaultRuleSet()
	}

	return &Router{
		classifier: NewClassifier(rules),
		apiKey:     cfg.APIKey,
		factory:    cfg.Factory,
		cache:      make(map[cacheKey]LLM),
		log:        logger.Get().With("component", "model_router"),
	}, nil
}

// Classify exposes the pure classification step without touching router state.
func (r *Router) Classify(role, task, taskContext string) Classification {
	return r.classifier.Classify(role, task, taskContext)
}

// Route classifies the task, resolves the model configuration and returns a
// cached or freshly constructed LLM handle. Classification never fails;
// only credential-dependent handle resolution can, and that error propagates
// to the caller unchanged.
func (r *Router) Route(role, task, taskContext string) (RouteResult, error) {
	cls := r.classifier.Classify(role, task, taskContext)

	cfg, err := ModelConfigFor(cls, r.apiKey)
	if err != nil {
		return RouteResult{}, err
	}

	handle, err := r.handleFor(cfg)
	if err != nil {
		return RouteResult{}, err
	}

	r.recordDecision(cls)

	r.log.Info("Routed task",
		"agent", cls.Role,
		"tier", cls.Tier,
		"model", cfg.Model,
		"complexity", cls.Complexity,
		"confidence", cls.Confidence)

	return RouteResult{Config: cfg, Classification: cls, LLM: handle}, nil
}

// handleFor returns the cached handle for the pair or constructs one.
// Construction happens outside the lock with a double-check on insert, so a
// slow construction does not serialize unrelated routing work.
func (r *Router) handleFor(cfg ModelConfig) (LLM, error) {
	key := cacheKey{model: cfg.Model, temperature: cfg.Temperature}

	r.mu.Lock()
	handle, ok := r.cache[key]
	r.mu.Unlock()

	metrics.RecordCacheLookup(ok)
	if ok {
		return handle, nil
	}

	fresh, err := r.factory(cfg.Model, cfg.Temperature)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.cache[key]; ok {
		return existing, nil
	}
	r.cache[key] = fresh

	return fresh, nil
}

func (r *Router) recordDecision(cls Classification) {
	savings := 0.0
	if cls.Tier == TierSmall {
		savings = smallTierSavings
	}

	r.mu.Lock()
	r.stats.totalRequests++
	if cls.Tier == TierSmall {
		r.stats.smallCount++
		r.stats.tokenSavings += smallTierSavings
	} else {
		r.stats.largeCount++
	}
	r.mu.Unlock()

	metrics.RecordRoutingDecision(cls.Role, string(cls.Tier), cls.Confidence, savings)
}
