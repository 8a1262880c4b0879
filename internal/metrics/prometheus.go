package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Routing metrics
	RoutingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_routing_decisions_total",
			Help: "Total number of model tier routing decisions",
		},
		[]string{"agent", "tier"}, // tier: small|large
	)

	RoutingConfidence = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hermes_routing_confidence",
			Help:    "Confidence of routing decisions",
			Buckets: []float64{0.5, 0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9},
		},
		[]string{"tier"},
	)

	TokenSavings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hermes_routing_token_savings_estimate_total",
			Help: "Accumulated estimated token savings from routing to the small tier",
		},
	)

	// LLM instance cache metrics
	LLMCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_llm_cache_lookups_total",
			Help: "Total number of LLM instance cache lookups",
		},
		[]string{"result"}, // result: hit|miss
	)

	// LLM call metrics
	LLMCompletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_llm_completions_total",
			Help: "Total number of LLM completion calls",
		},
		[]string{"model", "status"}, // status: success|error
	)

	LLMCompletionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hermes_llm_completion_latency_seconds",
			Help:    "LLM completion latency in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"model"},
	)
)

// Init registers all metrics with Prometheus
func Init() {
	prometheus.MustRegister(RoutingDecisions)
	prometheus.MustRegister(RoutingConfidence)
	prometheus.MustRegister(TokenSavings)

	prometheus.MustRegister(LLMCacheLookups)

	prometheus.MustRegister(LLMCompletions)
	prometheus.MustRegister(LLMCompletionLatency)
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRoutingDecision records one routing decision
func RecordRoutingDecision(agent, tier string, confidence float64, savings float64) {
	RoutingDecisions.WithLabelValues(agent, tier).Inc()
	RoutingConfidence.WithLabelValues(tier).Observe(confidence)

	if savings > 0 {
		TokenSavings.Add(savings)
	}
}

// RecordCacheLookup records an LLM instance cache lookup
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	LLMCacheLookups.WithLabelValues(result).Inc()
}

// RecordLLMCompletion records an LLM completion call
func RecordLLMCompletion(model string, latency time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	LLMCompletions.WithLabelValues(model, status).Inc()
	LLMCompletionLatency.WithLabelValues(model).Observe(latency.Seconds())
}
