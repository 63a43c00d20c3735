package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"offer_landing/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("HUBSPOT_ACCESS_TOKEN", "")
	t.Setenv("ANALYTICS_BACKEND", "")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Empty(cfg.CRM.AccessToken, "missing token is a valid setup")
	rq.Equal("https://api.hubapi.com", cfg.CRM.BaseURL)
	rq.Equal("precio_comite_final_final_final__el_unico__", cfg.CRM.PriceProperty)
	rq.Equal("whatsapp_asesor", cfg.CRM.ContactProperty)
	rq.Equal("deal_uuid", cfg.CRM.UUIDProperty)
	rq.Equal(time.Duration(0), cfg.CRM.Timeout)
	rq.Equal(15*time.Second, cfg.Loader.Deadline)
	rq.Equal(config.AnalyticsBackendMetrics, cfg.Analytics.Backend)
	rq.False(cfg.Analytics.UsesQueue())
	rq.False(cfg.Bot.Enabled())
	rq.False(cfg.Bot.CommandsEnabled())
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("HUBSPOT_ACCESS_TOKEN", "pat-na1-test")
	t.Setenv("CRM_TIMEOUT", "3s")
	t.Setenv("ANALYTICS_BACKEND", "queue")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "42")
	t.Setenv("BOT_ADMIN_ID", "7")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("pat-na1-test", cfg.CRM.AccessToken)
	rq.Equal(3*time.Second, cfg.CRM.Timeout)
	rq.True(cfg.Analytics.UsesQueue())
	rq.True(cfg.Bot.Enabled())
	rq.True(cfg.Bot.CommandsEnabled())
	rq.Equal(int64(7), cfg.Bot.AdminID)
}

func TestLoadUnknownAnalyticsBackend(t *testing.T) {
	rq := require.New(t)

	t.Setenv("ANALYTICS_BACKEND", "kafka")

	_, err := config.Load()
	rq.ErrorContains(err, `unknown backend "kafka"`)
}

func TestLoadNonPositiveDurations(t *testing.T) {
	testCases := []struct {
		name      string
		key       string
		value     string
		wantError string
	}{
		{name: "zero alert cooldown", key: "ALERT_COOLDOWN", value: "0s", wantError: "bot: alert cooldown must be positive, got 0s"},
		{name: "negative alert cooldown", key: "ALERT_COOLDOWN", value: "-1m", wantError: "bot: alert cooldown must be positive, got -1m0s"},
		{name: "zero dedup ttl", key: "ANALYTICS_DEDUP_TTL", value: "0s", wantError: "analytics: dedup ttl must be positive, got 0s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			t.Setenv("ANALYTICS_BACKEND", "metrics")
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			rq.EqualError(err, tc.wantError)
		})
	}
}
