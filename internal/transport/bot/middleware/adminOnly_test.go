package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"offer_landing/internal/transport/bot/middleware"
)

func TestSenderID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		update telego.Update
		want   int64
	}{
		{
			name:   "message",
			update: telego.Update{Message: &telego.Message{From: &telego.User{ID: 7}}},
			want:   7,
		},
		{
			name:   "channel post without sender",
			update: telego.Update{Message: &telego.Message{}},
			want:   0,
		},
		{
			name:   "callback",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: 9}}},
			want:   9,
		},
		{
			name:   "other",
			update: telego.Update{},
			want:   0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.want, middleware.SenderID(tc.update))
		})
	}
}
