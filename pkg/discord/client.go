package discord

import (
	"github.com/bwmarrin/discordgo"
)

type Client struct {
	Session *discordgo.Session
}

func NewClient(token string) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Member roster access and message content both need privileged intents.
	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentGuildMembers

	return &Client{Session: session}, nil
}
