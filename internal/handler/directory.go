package handler

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/oopsididitagain335/pto-bot/internal/service"
)

// guildDirectory resolves claimant names against the guild roster. The
// roster is fetched once per directory, so a single history scan does not
// hammer the members endpoint.
type guildDirectory struct {
	session *discordgo.Session
	guildID string

	fetched bool
	members []*discordgo.Member
}

func (h *Handler) directoryFor(guildID string) service.MemberDirectory {
	return &guildDirectory{session: h.client.Session, guildID: guildID}
}

func (d *guildDirectory) Find(name string) (string, bool) {
	if !d.fetched {
		d.fetched = true
		if d.guildID == "" {
			return "", false
		}
		members, err := d.session.GuildMembers(d.guildID, "", 1000)
		if err != nil {
			logrus.WithError(err).Error("Failed to fetch guild members")
			return "", false
		}
		d.members = members
	}

	for _, m := range d.members {
		if m.User == nil {
			continue
		}
		display := m.Nick
		if display == "" {
			display = m.User.GlobalName
		}
		if display == "" {
			display = m.User.Username
		}
		if service.MatchMember(name, display, m.User.Username, m.User.String()) {
			return m.User.ID, true
		}
	}
	return "", false
}
