package connectors

import (
	"errors"

	"offer_landing/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var errNotConnected = errors.New("not connected")
