package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/oopsididitagain335/pto-bot/pkg/discordfmt"
)

const (
	colorGreen = 0x00ff00
	colorAmber = 0xffaa00
	colorRed   = 0xff0000
	colorGrey  = 0x777777
)

// postStatus recomputes who is currently on PTO from the request channel and
// posts the summary embed to the target channel.
func (h *Handler) postStatus(targetChannelID string) {
	guildID, err := h.guildOfRequestChannel()
	if err != nil {
		logrus.WithError(err).Error("Failed to look up request channel for status")
		return
	}

	active, err := h.ledger.ActiveLeaves(h.directoryFor(guildID), "", time.Now())
	if err != nil {
		logrus.WithError(err).Error("Failed to compute PTO status")
		return
	}

	max := h.evaluator.MaxConcurrent()

	var description string
	if len(active) == 0 {
		description = "📭 No one is currently on PTO."
	} else {
		lines := make([]string, 0, len(active))
		for _, req := range active {
			lines = append(lines, fmt.Sprintf("• %s (**%sd**) – _%s_ ends %s",
				discordfmt.Mention(req.ClaimantID), req.Days, req.Reason,
				discordfmt.RelativeTimestamp(req.EndsAt())))
		}
		description = strings.Join(lines, "\n")
	}

	color := colorGreen
	switch {
	case len(active) >= max:
		color = colorRed
	case len(active) >= max-1:
		color = colorAmber
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("👥 Currently on PTO: %d/%d", len(active), max),
		Description: description,
		Color:       color,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: "PTO Tracker"},
	}

	if _, err := h.client.Session.ChannelMessageSendEmbed(targetChannelID, embed); err != nil {
		logrus.WithError(err).Error("Failed to post PTO status")
	}
}
