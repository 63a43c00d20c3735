package config

import (
	"fmt"
	"time"
)

// Bot is the Telegram bot that alerts operators about CRM trouble and answers
// their lookup commands. Alerts are off while Token or ChatID is empty,
// commands are off while AdminID is zero.
type Bot struct {
	Token         string        `env:"BOT_TOKEN" json:"-"`
	ChatID        int64         `env:"BOT_CHAT_ID"`
	AdminID       int64         `env:"BOT_ADMIN_ID"`
	AlertCooldown time.Duration `env:"ALERT_COOLDOWN" envDefault:"10m"`
}

// A zero cooldown would never expire, so each alert key could fire only once.
func (b Bot) validate() error {
	if b.AlertCooldown <= 0 {
		return fmt.Errorf("alert cooldown must be positive, got %s", b.AlertCooldown)
	}

	return nil
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}

func (b Bot) CommandsEnabled() bool {
	return b.Token != "" && b.AdminID != 0
}
