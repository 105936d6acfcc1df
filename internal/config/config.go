package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config is read from the process environment. main optionally seeds the
// environment from config.env first.
type Config struct {
	BotToken      string
	ProviderToken string

	Port          string
	BaseURL       string
	WebhookSecret string

	RequiredChannels []string

	DataFile       string
	FreeDailyViews int

	PremiumPayload    string
	PremiumPriceStars int
	PremiumDays       int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PendingTTLH   int
}

var ErrMissingBotToken = errors.New("BOT_TOKEN is not set")

func Load() (*Config, error) {
	botToken := strings.TrimSpace(os.Getenv("BOT_TOKEN"))
	if botToken == "" {
		return nil, ErrMissingBotToken
	}

	cfg := &Config{
		BotToken:          botToken,
		ProviderToken:     strings.TrimSpace(os.Getenv("PROVIDER_TOKEN")),
		Port:              getEnv("PORT", "8080"),
		BaseURL:           strings.TrimRight(strings.TrimSpace(os.Getenv("BASE_URL")), "/"),
		WebhookSecret:     strings.TrimSpace(os.Getenv("WEBHOOK_SECRET")),
		RequiredChannels:  splitChannels(os.Getenv("REQUIRED_CHANNELS")),
		DataFile:          getEnv("DATA_FILE", "data.json"),
		FreeDailyViews:    getEnvInt("FREE_DAILY_VIEWS", 3),
		PremiumPayload:    getEnv("PREMIUM_PAYLOAD", "premium_plan"),
		PremiumPriceStars: getEnvInt("PREMIUM_PRICE_STARS", 150),
		PremiumDays:       getEnvInt("PREMIUM_DAYS", 30),
		RedisAddr:         getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		PendingTTLH:       getEnvInt("PENDING_TTL_HOURS", 24),
	}
	return cfg, nil
}

func getEnv(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitChannels(raw string) []string {
	parts := strings.Split(raw, ",")
	channels := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "@") {
			p = "@" + p
		}
		channels = append(channels, p)
	}
	return channels
}
