package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"offer_landing/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Bearer token",
			input:  []byte("POST /crm/v3/objects/deals/search HTTP/1.1\r\nAuthorization: Bearer pat-na1-secret\r\nContent-Type: application/json\r\n"),
			output: []byte("POST /crm/v3/objects/deals/search HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\nContent-Type: application/json\r\n"),
		},
		{
			name:   "Legacy api key",
			input:  []byte("GET /crm/v3/objects/deals/42?hapikey=abc-123&properties=whatsapp_asesor HTTP/1.1"),
			output: []byte("GET /crm/v3/objects/deals/42?hapikey=[MASKED]&properties=whatsapp_asesor HTTP/1.1"),
		},
		{
			name:   "Bot token",
			input:  []byte("POST /bot123456:AAE-secret_token/sendMessage HTTP/1.1"),
			output: []byte("POST /bot[MASKED]/sendMessage HTTP/1.1"),
		},
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Access token",
			input:  []byte(`{"accessToken":"eyJhbGciOiJFUzI1NiIsInR5cC","refreshToken":"eyJhbGciOiJFUzI1NiIsInR5cCI6IkpXVCJ9"}`),
			output: []byte(`{"accessToken":"[MASKED]","refreshToken":"[MASKED]"}`),
		},
		{
			name:   "Deal record is not masked",
			input:  []byte(`{"priceFinal":"110000000","advisorContactHandle":"https://api.whatsapp.com/send?phone=3009128399"}`),
			output: []byte(`{"priceFinal":"110000000","advisorContactHandle":"https://api.whatsapp.com/send?phone=3009128399"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	rq.Equal("DEBUG", logx.ParseLevel("debug").String())
	rq.Equal("WARN", logx.ParseLevel("warn").String())
	rq.Equal("INFO", logx.ParseLevel("nonsense").String())
	rq.Equal("INFO", logx.ParseLevel("").String())
}
