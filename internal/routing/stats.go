package routing

import "math"

// smallTierSavings is the heuristic token saving credited per small-tier
// request: the small model is assumed to cost ~30% of the large one,
// independent of measured usage.
const smallTierSavings = 0.7

// usageStats are process-wide routing counters, guarded by the router mutex.
// total always equals small + large.
type usageStats struct {
	totalRequests int64
	smallCount    int64
	largeCount    int64
	tokenSavings  float64
}

// UsageReport is a read-only snapshot of routing statistics. Percentages are
// rounded to one decimal and zero when no requests were routed yet.
type UsageReport struct {
	TotalRequests           int64
	SmallCount              int64
	LargeCount              int64
	SmallPercent            float64
	LargePercent            float64
	EstimatedSavingsPercent float64
}

// UsageReport returns the current statistics snapshot without mutating state.
func (r *Router) UsageReport() UsageReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	report := UsageReport{
		TotalRequests: r.stats.totalRequests,
		SmallCount:    r.stats.smallCount,
		LargeCount:    r.stats.largeCount,
	}

	if r.stats.totalRequests > 0 {
		total := float64(r.stats.totalRequests)
		report.SmallPercent = round1(float64(r.stats.smallCount) / total * 100)
		report.LargePercent = round1(float64(r.stats.largeCount) / total * 100)
		report.EstimatedSavingsPercent = round1(r.stats.tokenSavings / total * 100)
	}

	return report
}

// ResetStats zeroes the usage counters. The instance cache survives resets.
func (r *Router) ResetStats() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats = usageStats{}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
