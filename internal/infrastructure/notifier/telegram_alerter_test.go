package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"
)

type messageSenderMock struct {
	SendMessageFunc func(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	calls           []*telego.SendMessageParams
}

func (m *messageSenderMock) SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
	m.calls = append(m.calls, params)
	return m.SendMessageFunc(ctx, params)
}

func TestTelegramAlerterCooldown(t *testing.T) {
	rq := require.New(t)

	bot := &messageSenderMock{
		SendMessageFunc: func(context.Context, *telego.SendMessageParams) (*telego.Message, error) {
			return &telego.Message{}, nil
		},
	}

	alerter := newTelegramAlerter(bot, 42, time.Minute)
	ctx := context.Background()

	alerter.Alert(ctx, "crm:external_id", "<b>CRM lookup failed</b>")
	alerter.Alert(ctx, "crm:external_id", "<b>CRM lookup failed</b>")
	alerter.Alert(ctx, "crm:internal_id", "<b>CRM lookup failed</b>")

	rq.Len(bot.calls, 2)
	rq.Equal(telego.ModeHTML, bot.calls[0].ParseMode)
	rq.Equal(int64(42), bot.calls[0].ChatID.ID)
	rq.Equal("<b>CRM lookup failed</b>", bot.calls[0].Text)
}

func TestTelegramAlerterRetriesAfterSendFailure(t *testing.T) {
	rq := require.New(t)

	fail := true
	bot := &messageSenderMock{
		SendMessageFunc: func(context.Context, *telego.SendMessageParams) (*telego.Message, error) {
			if fail {
				return nil, errors.New("telego: 502 bad gateway")
			}
			return &telego.Message{}, nil
		},
	}

	alerter := newTelegramAlerter(bot, 42, time.Minute)

	alerter.Alert(context.Background(), "crm:external_id", "first")
	fail = false
	alerter.Alert(context.Background(), "crm:external_id", "second")
	alerter.Alert(context.Background(), "crm:external_id", "third")

	rq.Len(bot.calls, 2)
	rq.Equal("second", bot.calls[1].Text)
}

func TestNewTelegramAlerterRejectsBadToken(t *testing.T) {
	_, err := NewTelegramAlerter("not-a-token", 42, time.Minute)
	require.New(t).Error(err)
}

func TestNopAlerter(t *testing.T) {
	require.New(t).NotPanics(func() {
		NopAlerter{}.Alert(context.Background(), "k", "v")
	})
}
