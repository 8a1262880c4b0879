package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hermes/internal/adapters/ai"
	"hermes/internal/adapters/config"
	"hermes/internal/adapters/errors/noop"
	"hermes/internal/adapters/errors/sentry"
	"hermes/internal/agents"
	"hermes/internal/metrics"
	"hermes/internal/routing"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	// Initialize error tracker
	errorTracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(errorTracker)

	// Register prometheus metrics
	metrics.Init()

	// Build the model router and its per-role adapter
	llmRouter, err := initRouter(cfg)
	if err != nil {
		log.Fatalf("Failed to init model router: %v", err)
	}

	if cfg.App.Debug {
		runSelfCheck(llmRouter, log)
	}

	log.Info("System initialized successfully")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Metrics.Enabled {
		startMetricsServer(cfg.Metrics.Addr, log)
	}

	// Wait for shutdown signal
	waitForShutdown(ctx, cancel, errorTracker, log)
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		log.Info("Error tracking disabled")
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}

	log.Info("Error tracking initialized (Sentry)")
	return tracker
}

// initRouter wires the routing engine with the Groq-backed LLM factory
func initRouter(cfg *config.Config) (*agents.LLMRouter, error) {
	factory := ai.NewFactory(cfg.AI.GroqKey, cfg.AI.GroqBaseURL)

	router, err := routing.NewRouter(routing.Config{
		APIKey: cfg.AI.GroqKey,
		Factory: func(model string, temperature float64) (routing.LLM, error) {
			return factory.New(model, temperature)
		},
	})
	if err != nil {
		return nil, err
	}

	return agents.NewLLMRouter(router, cfg.AI.GroqKey), nil
}

// runSelfCheck routes a fixed set of representative tasks and logs the
// resulting usage report. Only runs in debug mode.
func runSelfCheck(llmRouter *agents.LLMRouter, log *logger.Logger) {
	cases := []struct {
		agentType agents.AgentType
		task      string
	}{
		{agents.AgentPricer, "Calculate arbitrage opportunity between markets"},
		{agents.AgentMarketAnalyzer, "Fetch market data and convert to JSON format"},
		{agents.AgentExecutive, "Coordinate task delegation to other agents"},
		{agents.AgentInventory, "Check current balance and update inventory"},
		{agents.AgentPricer, "Analyze complex pricing strategy for high-frequency trading"},
		{agents.AgentMarketAnalyzer, "Perform complex analysis of market trends"},
	}

	for _, c := range cases {
		if _, err := llmRouter.ForAgent(c.agentType, c.task, ""); err != nil {
			log.Warnf("Self-check routing failed for %s: %v", c.agentType, err)
			return
		}
	}

	llmRouter.LogStats()
}

// startMetricsServer serves the prometheus /metrics endpoint
func startMetricsServer(addr string, log *logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Errorf("Metrics server stopped: %v", err)
		}
	}()

	log.Infof("Metrics server listening on %s", addr)
}

// waitForShutdown waits for shutdown signal and performs graceful shutdown
func waitForShutdown(ctx context.Context, cancel context.CancelFunc, errorTracker errors.Tracker, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Shutting down...")

	cancel()

	// Flush error tracker
	if errorTracker != nil {
		if err := errorTracker.Flush(ctx); err != nil {
			log.Warnf("Failed to flush error tracker: %v", err)
		}
	}

	log.Info("Shutdown complete")
}
