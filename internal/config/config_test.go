package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingBotToken)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data.json", cfg.DataFile)
	assert.Equal(t, 3, cfg.FreeDailyViews)
	assert.Equal(t, "premium_plan", cfg.PremiumPayload)
	assert.Equal(t, 30, cfg.PremiumDays)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Empty(t, cfg.RequiredChannels)
}

func TestSplitChannels(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("REQUIRED_CHANNELS", "@canal1, canal2 ,,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"@canal1", "@canal2"}, cfg.RequiredChannels)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BASE_URL", "https://bot.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://bot.example.com", cfg.BaseURL)
}
