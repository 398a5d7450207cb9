package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/oopsididitagain335/pto-bot/internal/config"
	"github.com/oopsididitagain335/pto-bot/internal/models"
	"github.com/oopsididitagain335/pto-bot/internal/service"
	"github.com/oopsididitagain335/pto-bot/pkg/discord"
	"github.com/oopsididitagain335/pto-bot/pkg/discordfmt"
)

// Command token that triggers a status report from any channel.
const statusCommand = ",pto"

// Format-error notices are removed after this delay to keep the request
// channel readable.
const formatNoticeTTL = 10 * time.Second

type Handler struct {
	client    *discord.Client
	ledger    *service.Ledger
	evaluator *service.Evaluator
	scheduler *service.ReturnScheduler
	config    *config.BotConfig

	// Guild of the request channel, resolved lazily. discordgo dispatches
	// ready and message events on separate goroutines, so access goes
	// through guildMu.
	guildMu        sync.Mutex
	requestGuildID string
}

func NewHandler(
	client *discord.Client,
	ledger *service.Ledger,
	evaluator *service.Evaluator,
	scheduler *service.ReturnScheduler,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:    client,
		ledger:    ledger,
		evaluator: evaluator,
		scheduler: scheduler,
		config:    cfg,
	}
}

func (h *Handler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if strings.TrimSpace(m.Content) == statusCommand {
		h.postStatus(m.ChannelID)
		return
	}

	if m.ChannelID != h.config.RequestChannelID {
		return
	}

	h.handleRequest(m)
}

func (h *Handler) handleRequest(m *discordgo.MessageCreate) {
	parsed, err := service.ParseRequest(m.Content)
	if err != nil {
		var valueErr *service.ValueError
		switch {
		case errors.As(err, &valueErr):
			h.reply(m, "❌ Invalid number of days.")
		default:
			h.replyTransient(m, "❌ **Invalid format.** Use: `Your Name - X days - Reason`")
		}
		return
	}

	sender := service.Sender{
		ID:          m.Author.ID,
		Username:    m.Author.Username,
		DisplayName: memberDisplayName(m),
		Tag:         m.Author.String(),
	}

	claimantID, err := service.ResolveClaimant(m.Content, parsed.Claimant, sender)
	if err != nil {
		h.reply(m, "⚠️ You can only submit PTO for yourself.")
		return
	}

	dir := h.directoryFor(m.GuildID)
	now := time.Now()

	// The triggering message is already in the fetched history; keep it out
	// of its own quota and occupancy.
	used, err := h.ledger.UsedDays(dir, claimantID, m.ID, now)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute PTO usage")
		return
	}
	active, err := h.ledger.ActiveLeaves(dir, m.ID, now)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute active leaves")
		return
	}

	if err := h.evaluator.Evaluate(parsed.Days, used, len(active)); err != nil {
		var quotaErr *service.QuotaExceededError
		var fullErr *service.ConcurrencyFullError
		switch {
		case errors.As(err, &quotaErr):
			h.reply(m, fmt.Sprintf("❌ **Denied:** Used %s/%s days. Only %s days left.",
				quotaErr.Used.StringFixed(1), quotaErr.Limit, quotaErr.Remaining.StringFixed(1)))
		case errors.As(err, &fullErr):
			h.reply(m, fmt.Sprintf("🚫 Max %d people on PTO. Wait for someone to return.", fullErr.Max))
		}
		return
	}

	req := models.LeaveRequest{
		ClaimantID:          claimantID,
		ClaimantDisplayName: parsed.Claimant,
		Days:                parsed.Days,
		Reason:              parsed.Reason,
		SubmittedAt:         m.Timestamp,
		MessageID:           m.ID,
	}
	h.approve(m, req, used)
}

func (h *Handler) approve(m *discordgo.MessageCreate, req models.LeaveRequest, used decimal.Decimal) {
	mention := discordfmt.Mention(req.ClaimantID)
	h.reply(m, fmt.Sprintf("✅ **Approved:** %s requested **%s days** off for _%s_",
		mention, req.Days, req.Reason))

	newUsed := used.Add(req.Days)
	embed := &discordgo.MessageEmbed{
		Title:       "✅ PTO Approved",
		Description: fmt.Sprintf("%s is off for **%s days**\n> _%s_", mention, req.Days, req.Reason),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Used (60d)", Value: fmt.Sprintf("%s/%s", newUsed.StringFixed(1), h.evaluator.MaxPerWindow()), Inline: true},
			{Name: "Ends", Value: discordfmt.RelativeTimestamp(req.EndsAt()), Inline: true},
		},
		Color:     colorGreen,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if _, err := h.client.Session.ChannelMessageSendEmbed(h.config.LogChannelID, embed); err != nil {
		logrus.WithError(err).Error("Failed to post approval to log channel")
	}

	h.scheduleReturnAlert(req)
	h.postStatus(h.config.LogChannelID)
}

// scheduleReturnAlert arms the end-of-leave notifications for a request.
func (h *Handler) scheduleReturnAlert(req models.LeaveRequest) {
	h.scheduler.Schedule(req.ClaimantID, req.EndsAt(), func() {
		h.announceReturn(req)
	})
}

// announceReturn fires when a leave ends: best-effort DM, public ping in the
// announcement channel, and a log entry.
func (h *Handler) announceReturn(req models.LeaveRequest) {
	s := h.client.Session
	mention := discordfmt.Mention(req.ClaimantID)

	if dm, err := s.UserChannelCreate(req.ClaimantID); err != nil {
		logrus.WithError(err).Warnf("Failed to open DM channel for user %s", req.ClaimantID)
	} else if _, err := s.ChannelMessageSend(dm.ID, fmt.Sprintf(
		"⏰ Your PTO has ended! You were off for **%s days**. Welcome back!", req.Days)); err != nil {
		// Users with closed DMs are expected; best effort only.
		logrus.WithError(err).Warnf("Failed to DM user %s", req.ClaimantID)
	}

	if _, err := s.ChannelMessageSend(h.config.AnnounceChannelID, fmt.Sprintf(
		"%s 🎉 **Welcome back!** Your PTO has ended. You were off for **%s days**.", mention, req.Days)); err != nil {
		logrus.WithError(err).Error("Failed to post return announcement")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🔚 PTO Ended",
		Description: fmt.Sprintf("%s has returned from **%s days** of PTO.", mention, req.Days),
		Color:       colorGrey,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if _, err := s.ChannelMessageSendEmbed(h.config.LogChannelID, embed); err != nil {
		logrus.WithError(err).Error("Failed to log PTO end")
	}
}

func (h *Handler) reply(m *discordgo.MessageCreate, content string) *discordgo.Message {
	msg, err := h.client.Session.ChannelMessageSendReply(m.ChannelID, content, m.Reference())
	if err != nil {
		logrus.WithError(err).Error("Failed to send reply")
		return nil
	}
	return msg
}

// replyTransient replies and removes the notice after formatNoticeTTL.
func (h *Handler) replyTransient(m *discordgo.MessageCreate, content string) {
	msg := h.reply(m, content)
	if msg == nil {
		return
	}
	time.AfterFunc(formatNoticeTTL, func() {
		if err := h.client.Session.ChannelMessageDelete(msg.ChannelID, msg.ID); err != nil {
			logrus.WithError(err).Debug("Failed to delete format notice")
		}
	})
}

func memberDisplayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
