// internal/service/parser.go
package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Grammar: "<claimant> - <days> day(s) - <reason>". The claimant capture is
// non-greedy and the day count must sit right after the first qualifying
// dash, so dashes inside the reason do not confuse the split.
var ptoPattern = regexp.MustCompile(`(?i)^(.+?)\s*-\s*(\d+(?:\.\d+)?)\s*days?\s*-\s*(.+)$`)

var mentionPattern = regexp.MustCompile(`<@!?(\d+)>`)

// ParsedRequest is the raw triple extracted from a request message, before
// identity resolution.
type ParsedRequest struct {
	Claimant string
	Days     decimal.Decimal
	Reason   string
}

// ParseRequest extracts (claimant, days, reason) from a message.
// Returns ErrNoMatch when the text does not follow the grammar, and a
// ValueError when the day count is not positive. Day counts are kept at
// 0.1-day granularity.
func ParseRequest(content string) (ParsedRequest, error) {
	m := ptoPattern.FindStringSubmatch(strings.TrimSpace(content))
	if m == nil {
		return ParsedRequest{}, ErrNoMatch
	}

	days, err := decimal.NewFromString(m[2])
	if err != nil {
		return ParsedRequest{}, &ValueError{Raw: m[2]}
	}
	days = days.Round(1)
	if !days.IsPositive() {
		return ParsedRequest{}, &ValueError{Raw: m[2]}
	}

	return ParsedRequest{
		Claimant: strings.TrimSpace(m[1]),
		Days:     days,
		Reason:   strings.TrimSpace(m[3]),
	}, nil
}

// ExtractMention returns the user id of the first <@id> or <@!id> token.
func ExtractMention(content string) (string, bool) {
	m := mentionPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}
