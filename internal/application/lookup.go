package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/xid"

	"offer_landing/internal/domain/value"
	"offer_landing/internal/infrastructure/analytics"
	"offer_landing/internal/infrastructure/lookupapi"
	"offer_landing/internal/loader"
)

// LookupResult is what a page session shows after submitting an identifier.
type LookupResult struct {
	Snapshot loader.Snapshot
	Address  string
}

// Lookup drives one page session against a running service: mount on the
// landing address, submit id and wait for the loader to settle.
func (a *Application) Lookup(ctx context.Context, id string, mode value.LookupMode) (LookupResult, error) {
	baseURL := strings.TrimRight(a.cfg.Loader.BaseURL, "/")

	address, err := loader.NewURLAddress(baseURL+"/", loader.DefaultAddressParam)
	if err != nil {
		return LookupResult{}, fmt.Errorf("loader.NewURLAddress: %w", err)
	}

	l := loader.New(
		lookupapi.NewClient(baseURL, mode, nil),
		address,
		loader.WithDeadline(a.cfg.Loader.Deadline),
		loader.WithSink(analytics.LogSink{}),
		loader.WithSessionID(xid.New().String()),
	)

	l.Mount(ctx)
	l.Submit(ctx, id)

	if err = l.Wait(ctx); err != nil {
		return LookupResult{}, fmt.Errorf("loader.Wait: %w", err)
	}

	snapshot := l.Snapshot()
	l.Leave(ctx)

	return LookupResult{
		Snapshot: snapshot,
		Address:  address.String(),
	}, nil
}

