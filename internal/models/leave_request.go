// internal/models/leave_request.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveRequest is a PTO request derived from a single channel message.
// It has no storage of its own: it exists only as long as the originating
// message exists, and is re-derived from history whenever it is needed.
type LeaveRequest struct {
	ClaimantID          string
	ClaimantDisplayName string
	Days                decimal.Decimal
	Reason              string
	SubmittedAt         time.Time
	MessageID           string
}

// EndsAt is the derived end of the leave: SubmittedAt + Days * 24h.
func (r LeaveRequest) EndsAt() time.Time {
	hours := r.Days.Mul(decimal.NewFromInt(24))
	f, _ := hours.Float64()
	return r.SubmittedAt.Add(time.Duration(f * float64(time.Hour)))
}

// Active reports whether the leave is still running at the given moment.
func (r LeaveRequest) Active(now time.Time) bool {
	return r.EndsAt().After(now)
}
