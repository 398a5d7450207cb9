package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	DiscordToken string
	Port         string

	RequestChannelID  string
	LogChannelID      string
	AnnounceChannelID string

	HistoryFetchLimit int

	// Business constants, fixed configuration rather than computed.
	MaxConcurrentPTO  int
	RollingWindowDays int
	MaxPTOPerWindow   float64
}

var instance *BotConfig
var once sync.Once

func GetBotConfig() *BotConfig {
	once.Do(func() {
		instance = &BotConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Infof("no .env file loaded: %s", err.Error())
		}

		instance.DiscordToken = getEnv("DISCORD_BOT_TOKEN", "")
		if instance.DiscordToken == "" {
			logrus.Fatal("could not get bot token")
		}

		// Optional: the liveness server only runs when a port is set.
		instance.Port = getEnv("PORT", "")

		instance.RequestChannelID = getEnv("PTO_REQUEST_CHANNEL_ID", "")
		if instance.RequestChannelID == "" {
			logrus.Fatal("could not get request channel id")
		}

		instance.LogChannelID = getEnv("PTO_LOG_CHANNEL_ID", "")
		if instance.LogChannelID == "" {
			logrus.Fatal("could not get log channel id")
		}

		instance.AnnounceChannelID = getEnv("PTO_END_ANNOUNCE_CHANNEL_ID", "")
		if instance.AnnounceChannelID == "" {
			logrus.Fatal("could not get announce channel id")
		}

		instance.HistoryFetchLimit = int(getEnvAsInt("HISTORY_FETCH_LIMIT", 100))
		instance.MaxConcurrentPTO = int(getEnvAsInt("MAX_CONCURRENT_PTO", 4))
		instance.RollingWindowDays = int(getEnvAsInt("ROLLING_WINDOW_DAYS", 60))
		instance.MaxPTOPerWindow = getEnvAsFloat("MAX_PTO_PER_WINDOW", 14.0)
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}

	return defaultVal
}
