// internal/service/evaluator.go
package service

import "github.com/shopspring/decimal"

// Evaluator applies the two business gates to a resolved request. The
// identity gate runs earlier, in ResolveClaimant; the canonical order is
// identity, then quota, then concurrency, first failure wins.
type Evaluator struct {
	maxPerWindow  decimal.Decimal
	maxConcurrent int
}

func NewEvaluator(maxPerWindow float64, maxConcurrent int) *Evaluator {
	return &Evaluator{
		maxPerWindow:  decimal.NewFromFloat(maxPerWindow),
		maxConcurrent: maxConcurrent,
	}
}

// Evaluate returns nil to approve, a *QuotaExceededError when the request
// would overrun the rolling quota, or a *ConcurrencyFullError when the
// concurrent-leave cap is already reached.
func (e *Evaluator) Evaluate(requested, used decimal.Decimal, activeCount int) error {
	remaining := e.maxPerWindow.Sub(used)
	if requested.GreaterThan(remaining) {
		return &QuotaExceededError{Used: used, Limit: e.maxPerWindow, Remaining: remaining}
	}
	if activeCount >= e.maxConcurrent {
		return &ConcurrencyFullError{Active: activeCount, Max: e.maxConcurrent}
	}
	return nil
}

// MaxPerWindow exposes the quota limit for report formatting.
func (e *Evaluator) MaxPerWindow() decimal.Decimal { return e.maxPerWindow }

// MaxConcurrent exposes the concurrent-leave cap for report formatting.
func (e *Evaluator) MaxConcurrent() int { return e.maxConcurrent }
