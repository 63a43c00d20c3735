package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/patrickmn/go-cache"

	"offer_landing/pkg/logx"
)

const sendTimeout = 10 * time.Second

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramAlerter posts operator alerts to a Telegram chat. Alerts sharing a
// key are sent at most once per cooldown.
type TelegramAlerter struct {
	bot      messageSender
	chatID   int64
	cooldown time.Duration
	sent     *cache.Cache
}

// NewTelegramAlerter creates an alerter that sends each key at most once per
// cooldown.
func NewTelegramAlerter(token string, chatID int64, cooldown time.Duration) (*TelegramAlerter, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return newTelegramAlerter(bot, chatID, cooldown), nil
}

func newTelegramAlerter(bot messageSender, chatID int64, cooldown time.Duration) *TelegramAlerter {
	return &TelegramAlerter{
		bot:      bot,
		chatID:   chatID,
		cooldown: cooldown,
		sent:     cache.New(cooldown, 2*cooldown),
	}
}

// Alert sends text as HTML. Failures are logged only.
func (a *TelegramAlerter) Alert(ctx context.Context, key, text string) {
	if err := a.sent.Add(key, struct{}{}, a.cooldown); err != nil {
		logger(ctx).Debug("alert suppressed", slog.String("alert-key", key))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	msg := tu.Message(tu.ID(a.chatID), text).WithParseMode(telego.ModeHTML)

	if _, err := a.bot.SendMessage(ctx, msg); err != nil {
		// let the next failure try again
		a.sent.Delete(key)
		logger(ctx).Error("bot.SendMessage", slog.String("alert-key", key), logx.Error(err))
	}
}

// NopAlerter drops alerts; used while the bot is not configured.
type NopAlerter struct{}

func (NopAlerter) Alert(context.Context, string, string) {}
