package simulate

import "time"

// Policy carries the cost and timing constants the estimator and analyzer
// are parameterized on. The values are fixed policy, not configuration:
// changing them changes quoted costs, so any change must bump Version.
type Policy struct {
	Version string

	// Cost constants, in stroops (1 XLM = 10^7 stroops).
	StroopsPerXLM      int64
	BaseDeploymentCost int64
	CostPerKB          int64
	CostPerFunction    int64
	CostPerTable       int64
	CostPerMemoryPage  int64

	// Performance estimation baseline.
	BaseMSPerKB uint64

	// SoftBudget is the advisory elapsed-time threshold for the
	// SlowSimulation warning. HardBudget is the caller-enforced ceiling the
	// soft budget is derived from; the pipeline itself never aborts on it.
	SoftBudget time.Duration
	HardBudget time.Duration
}

// DefaultPolicy returns the current production cost policy.
func DefaultPolicy() Policy {
	return Policy{
		Version:            "v1",
		StroopsPerXLM:      10_000_000,
		BaseDeploymentCost: 50_000,
		CostPerKB:          5_000,
		CostPerFunction:    1_000,
		CostPerTable:       2_000,
		CostPerMemoryPage:  10_000,
		BaseMSPerKB:        1,
		SoftBudget:         4 * time.Second,
		HardBudget:         5 * time.Second,
	}
}
