// internal/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNoMatch means the message text does not follow the PTO grammar.
var ErrNoMatch = errors.New("message does not match the PTO request format")

// ErrNotSelf means the resolved claimant is not the message sender.
// Requests on someone else's behalf are always rejected.
var ErrNotSelf = errors.New("pto requests may only be submitted for yourself")

// ValueError means the day count parsed but is not a positive number.
type ValueError struct {
	Raw string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid number of days: %q", e.Raw)
}

// QuotaExceededError denies a request that would overrun the rolling window.
type QuotaExceededError struct {
	Used      decimal.Decimal
	Limit     decimal.Decimal
	Remaining decimal.Decimal
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: used %s/%s days, only %s left",
		e.Used.StringFixed(1), e.Limit, e.Remaining.StringFixed(1))
}

// ConcurrencyFullError denies a request while the concurrent-leave cap is hit.
type ConcurrencyFullError struct {
	Active int
	Max    int
}

func (e *ConcurrencyFullError) Error() string {
	return fmt.Sprintf("concurrent leave slots full: %d/%d", e.Active, e.Max)
}
