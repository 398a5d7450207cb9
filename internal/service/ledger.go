// internal/service/ledger.go
package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/oopsididitagain335/pto-bot/internal/history"
	"github.com/oopsididitagain335/pto-bot/internal/models"
)

// Ledger answers usage and occupancy questions by replaying the request
// channel's recent history. Nothing is cached: every call re-fetches and
// re-parses, so results for an unchanged history are identical.
type Ledger struct {
	provider         history.Provider
	requestChannelID string
	fetchLimit       int
	window           time.Duration
	logger           *logrus.Logger
}

func NewLedger(provider history.Provider, requestChannelID string, fetchLimit, windowDays int) *Ledger {
	return &Ledger{
		provider:         provider,
		requestChannelID: requestChannelID,
		fetchLimit:       fetchLimit,
		window:           time.Duration(windowDays) * 24 * time.Hour,
		logger:           logrus.New(),
	}
}

// requestFrom rebuilds a LeaveRequest from a historical message. Messages
// that fail to parse or whose claimant cannot be resolved contribute
// nothing to any total.
func (l *Ledger) requestFrom(msg history.Message, dir MemberDirectory) (models.LeaveRequest, bool) {
	parsed, err := ParseRequest(msg.Content)
	if err != nil {
		return models.LeaveRequest{}, false
	}

	id, ok := ExtractMention(msg.Content)
	if !ok {
		if dir == nil {
			return models.LeaveRequest{}, false
		}
		id, ok = dir.Find(parsed.Claimant)
		if !ok {
			return models.LeaveRequest{}, false
		}
	}

	return models.LeaveRequest{
		ClaimantID:          id,
		ClaimantDisplayName: parsed.Claimant,
		Days:                parsed.Days,
		Reason:              parsed.Reason,
		SubmittedAt:         msg.Timestamp,
		MessageID:           msg.ID,
	}, true
}

// UsedDays sums the days requested by userID within the trailing window,
// rounded to one decimal place. excludeMessageID drops the message being
// evaluated from the scan: a new request is judged against prior history
// only, never charged against itself.
func (l *Ledger) UsedDays(dir MemberDirectory, userID, excludeMessageID string, now time.Time) (decimal.Decimal, error) {
	msgs, err := l.provider.Recent(l.requestChannelID, l.fetchLimit)
	if err != nil {
		return decimal.Zero, err
	}

	l.logger.Debugf("Replaying %d message(s) for usage of user %s", len(msgs), userID)

	cutoff := now.Add(-l.window)
	total := decimal.Zero
	for _, msg := range msgs {
		if msg.AuthorBot || msg.ID == excludeMessageID || msg.Timestamp.Before(cutoff) {
			continue
		}
		req, ok := l.requestFrom(msg, dir)
		if !ok || req.ClaimantID != userID {
			continue
		}
		total = total.Add(req.Days)
	}

	return total.Round(1), nil
}

// ActiveLeaves returns every request whose derived end time is still in the
// future, earliest-returning first. excludeMessageID keeps the request under
// evaluation out of its own occupancy count.
func (l *Ledger) ActiveLeaves(dir MemberDirectory, excludeMessageID string, now time.Time) ([]models.LeaveRequest, error) {
	msgs, err := l.provider.Recent(l.requestChannelID, l.fetchLimit)
	if err != nil {
		return nil, err
	}

	var active []models.LeaveRequest
	for _, msg := range msgs {
		if msg.AuthorBot || msg.ID == excludeMessageID {
			continue
		}
		req, ok := l.requestFrom(msg, dir)
		if !ok || !req.Active(now) {
			continue
		}
		active = append(active, req)
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].EndsAt().Before(active[j].EndsAt())
	})
	return active, nil
}
