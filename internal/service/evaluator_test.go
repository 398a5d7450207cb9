package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEvaluateApprovesFirstRequest(t *testing.T) {
	e := NewEvaluator(14.0, 4)
	if err := e.Evaluate(dec("5"), decimal.Zero, 0); err != nil {
		t.Errorf("expected approval, got %v", err)
	}
}

func TestEvaluateQuotaExceeded(t *testing.T) {
	// 5 used, 10 requested: only 9 left.
	e := NewEvaluator(14.0, 4)
	err := e.Evaluate(dec("10"), dec("5"), 0)

	var quotaErr *QuotaExceededError
	if !errors.As(err, &quotaErr) {
		t.Fatalf("expected QuotaExceededError, got %v", err)
	}
	if quotaErr.Used.StringFixed(1) != "5.0" {
		t.Errorf("expected 5.0 used, got %s", quotaErr.Used.StringFixed(1))
	}
	if quotaErr.Remaining.StringFixed(1) != "9.0" {
		t.Errorf("expected 9.0 remaining, got %s", quotaErr.Remaining.StringFixed(1))
	}
}

func TestEvaluateExactRemainderApproved(t *testing.T) {
	e := NewEvaluator(14.0, 4)
	if err := e.Evaluate(dec("9"), dec("5"), 0); err != nil {
		t.Errorf("requesting exactly the remaining quota must pass, got %v", err)
	}
}

func TestEvaluateConcurrencyFull(t *testing.T) {
	// In quota, but all slots taken.
	e := NewEvaluator(14.0, 4)
	err := e.Evaluate(dec("2"), decimal.Zero, 4)

	var fullErr *ConcurrencyFullError
	if !errors.As(err, &fullErr) {
		t.Fatalf("expected ConcurrencyFullError, got %v", err)
	}
	if fullErr.Active != 4 || fullErr.Max != 4 {
		t.Errorf("expected 4/4 occupancy, got %d/%d", fullErr.Active, fullErr.Max)
	}
}

func TestEvaluateLastSlotApproved(t *testing.T) {
	e := NewEvaluator(14.0, 4)
	if err := e.Evaluate(dec("2"), decimal.Zero, 3); err != nil {
		t.Errorf("3 of 4 slots taken must still pass, got %v", err)
	}
}

func TestEvaluateQuotaCheckedBeforeConcurrency(t *testing.T) {
	e := NewEvaluator(14.0, 4)
	err := e.Evaluate(dec("1"), dec("14"), 4)

	var quotaErr *QuotaExceededError
	if !errors.As(err, &quotaErr) {
		t.Errorf("quota gate must fire before the concurrency gate, got %v", err)
	}
}

func TestEvaluateFractionalQuota(t *testing.T) {
	e := NewEvaluator(14.0, 4)
	if err := e.Evaluate(dec("0.5"), dec("13.5"), 0); err != nil {
		t.Errorf("13.5 + 0.5 is exactly the quota, got %v", err)
	}
	if err := e.Evaluate(dec("0.6"), dec("13.5"), 0); err == nil {
		t.Error("13.5 + 0.6 overruns the quota, expected a denial")
	}
}
