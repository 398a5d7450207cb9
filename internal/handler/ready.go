package handler

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

func (h *Handler) OnReady(s *discordgo.Session, r *discordgo.Ready) {
	logrus.Infof("Logged in as %s", r.User.String())

	h.lockRequestChannel(s)
	h.replayActiveLeaves()
}

// lockRequestChannel strips ManageMessages from @everyone on the request
// channel. The channel history is the audit ledger, so ordinary members must
// not be able to delete or edit requests out of it.
func (h *Handler) lockRequestChannel(s *discordgo.Session) {
	guildID, err := h.guildOfRequestChannel()
	if err != nil {
		logrus.WithError(err).Error("Failed to look up request channel")
		return
	}

	// The @everyone role shares the guild's id.
	allow := int64(discordgo.PermissionViewChannel | discordgo.PermissionSendMessages)
	deny := int64(discordgo.PermissionManageMessages)
	err = s.ChannelPermissionSet(h.config.RequestChannelID, guildID,
		discordgo.PermissionOverwriteTypeRole, allow, deny)
	if err != nil {
		logrus.WithError(err).Error("Failed to lock request channel")
		return
	}
	logrus.Info("🔒 Request channel locked.")
}

// replayActiveLeaves rediscovers leaves still in progress after a restart
// and re-arms their return alerts. Pending alerts are never persisted; the
// request channel history is the only record.
func (h *Handler) replayActiveLeaves() {
	guildID, err := h.guildOfRequestChannel()
	if err != nil {
		logrus.WithError(err).Error("Failed to look up request channel for replay")
		return
	}

	active, err := h.ledger.ActiveLeaves(h.directoryFor(guildID), "", time.Now())
	if err != nil {
		logrus.WithError(err).Error("Failed to replay active leaves")
		return
	}

	for _, req := range active {
		h.scheduleReturnAlert(req)
	}
	logrus.Infof("Rescheduled %d return alert(s) from history", len(active))
}

func (h *Handler) guildOfRequestChannel() (string, error) {
	h.guildMu.Lock()
	defer h.guildMu.Unlock()

	if h.requestGuildID != "" {
		return h.requestGuildID, nil
	}
	ch, err := h.client.Session.Channel(h.config.RequestChannelID)
	if err != nil {
		return "", err
	}
	h.requestGuildID = ch.GuildID
	return ch.GuildID, nil
}
