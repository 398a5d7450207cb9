// internal/models/leave_request_test.go
package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEndsAtDerivation(t *testing.T) {
	start := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	req := LeaveRequest{Days: decimal.NewFromInt(5), SubmittedAt: start}

	want := start.Add(5 * 24 * time.Hour)
	if got := req.EndsAt(); !got.Equal(want) {
		t.Errorf("expected end %v, got %v", want, got)
	}
}

func TestEndsAtFractionalDays(t *testing.T) {
	start := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	req := LeaveRequest{Days: decimal.NewFromFloat(0.5), SubmittedAt: start}

	want := start.Add(12 * time.Hour)
	if got := req.EndsAt(); !got.Equal(want) {
		t.Errorf("expected end %v, got %v", want, got)
	}
}

func TestActive(t *testing.T) {
	now := time.Now()
	running := LeaveRequest{Days: decimal.NewFromInt(2), SubmittedAt: now.Add(-24 * time.Hour)}
	over := LeaveRequest{Days: decimal.NewFromInt(1), SubmittedAt: now.Add(-48 * time.Hour)}

	if !running.Active(now) {
		t.Error("leave ending tomorrow must be active")
	}
	if over.Active(now) {
		t.Error("leave that ended yesterday must not be active")
	}
}
