package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"offer_landing/internal/transport/bot/handler"
	"offer_landing/pkg/logx"
)

// Bot answers operator commands over Telegram long polling.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler
}

// New connects to Telegram. events may be nil, then /events explains that
// history is not stored.
func New(
	ctx context.Context,
	token string,
	adminID int64,
	deals handler.DealLookup,
	events handler.EventHistory,
) (*Bot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 60, //nolint:mnd
	})
	if err != nil {
		return nil, fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	handler.New(deals).WithEvents(events).RegisterRoutes(botHandler, adminID)

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
	}, nil
}

// Run handles updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		return fmt.Errorf("botHandler.Stop: %w", err)
	}

	return nil
}
