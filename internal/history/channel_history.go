// internal/history/channel_history.go
package history

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Discord returns at most 100 messages per call.
const pageSize = 100

// ChannelHistory is a read-through Provider over the Discord REST API.
type ChannelHistory struct {
	session *discordgo.Session
}

func NewChannelHistory(session *discordgo.Session) *ChannelHistory {
	return &ChannelHistory{session: session}
}

// Recent fetches up to limit messages, paging backwards when the limit
// exceeds a single API call.
func (h *ChannelHistory) Recent(channelID string, limit int) ([]Message, error) {
	var (
		out      []Message
		beforeID string
	)

	for len(out) < limit {
		batch := limit - len(out)
		if batch > pageSize {
			batch = pageSize
		}

		msgs, err := h.session.ChannelMessages(channelID, batch, beforeID, "", "")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch messages from channel %s: %w", channelID, err)
		}
		if len(msgs) == 0 {
			break
		}

		for _, m := range msgs {
			out = append(out, Message{
				ID:        m.ID,
				ChannelID: m.ChannelID,
				GuildID:   m.GuildID,
				AuthorID:  m.Author.ID,
				AuthorBot: m.Author.Bot,
				Content:   m.Content,
				Timestamp: m.Timestamp,
			})
		}
		beforeID = msgs[len(msgs)-1].ID

		if len(msgs) < batch {
			break
		}
	}

	return out, nil
}
