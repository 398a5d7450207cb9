// internal/history/history.go
package history

import "time"

// Message is the slice of a channel message the PTO pipeline cares about.
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	AuthorID  string
	AuthorBot bool
	Content   string
	Timestamp time.Time
}

// Provider reads recent messages from a channel, newest first.
//
// There is deliberately no cache and no persisted ledger behind this
// interface: the channel history is the only source of truth. The limit is
// a hard cutoff — qualifying messages older than the newest `limit` are
// silently excluded, which can undercount long histories. Deployments pick
// the limit via HISTORY_FETCH_LIMIT.
type Provider interface {
	Recent(channelID string, limit int) ([]Message, error)
}
