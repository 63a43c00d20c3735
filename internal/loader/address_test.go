package loader_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"offer_landing/internal/loader"
)

func TestURLAddress(t *testing.T) {
	rq := require.New(t)

	addr, err := loader.NewURLAddress("https://ofertas.example.co/?utm_source=ads", loader.DefaultAddressParam)
	rq.NoError(err)
	rq.Empty(addr.Identifier())

	addr.ReplaceIdentifier("abc123")
	rq.Equal("abc123", addr.Identifier())
	rq.Equal("https://ofertas.example.co/?nid=abc123&utm_source=ads", addr.String())
	rq.Equal([]loader.HistoryEntry{
		{Kind: loader.HistoryReplace, URL: "https://ofertas.example.co/?nid=abc123&utm_source=ads"},
	}, addr.History())

	rq.NoError(addr.Navigate("/?nid=%20xyz%20"))
	rq.Equal("xyz", addr.Identifier())
	rq.Len(addr.History(), 2)
	rq.Equal(loader.HistoryPush, addr.History()[1].Kind)

	rq.NoError(addr.Navigate("/"))
	rq.Empty(addr.Identifier())
}
