package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/oopsididitagain335/pto-bot/internal/config"
	"github.com/oopsididitagain335/pto-bot/internal/handler"
	"github.com/oopsididitagain335/pto-bot/internal/history"
	"github.com/oopsididitagain335/pto-bot/internal/service"
	"github.com/oopsididitagain335/pto-bot/internal/web"
	"github.com/oopsididitagain335/pto-bot/pkg/discord"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	// Optional liveness endpoint for hosting platforms.
	if cfg.Port != "" {
		router := web.NewRouter()
		go func() {
			logrus.Infof("🌐 Web server running on port %s", cfg.Port)
			if err := router.Run(":" + cfg.Port); err != nil {
				logrus.WithError(err).Error("Web server stopped")
			}
		}()
	}

	client, err := discord.NewClient(cfg.DiscordToken)
	if err != nil {
		logrus.Fatal("Failed to create Discord client:", err)
	}

	ledger := service.NewLedger(
		history.NewChannelHistory(client.Session),
		cfg.RequestChannelID,
		cfg.HistoryFetchLimit,
		cfg.RollingWindowDays,
	)
	evaluator := service.NewEvaluator(cfg.MaxPTOPerWindow, cfg.MaxConcurrentPTO)
	scheduler := service.NewReturnScheduler()

	botHandler := handler.NewHandler(client, ledger, evaluator, scheduler, cfg)
	client.Session.AddHandler(botHandler.OnReady)
	client.Session.AddHandler(botHandler.OnMessageCreate)

	if err := client.Session.Open(); err != nil {
		logrus.Fatal("Failed to log in. Check your token:", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := client.Session.Close(); err != nil {
		logrus.Infof("Error closing Discord session: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
