package contextx

import (
	"context"
	"fmt"
)

// SessionID identifies one page session of the landing page. Analytics
// events of the same session share it.
type SessionID string

type contextKeySessionID struct{}

func (s SessionID) String() string {
	return string(s)
}

func WithSessionID(ctx context.Context, sessionID SessionID) context.Context {
	return context.WithValue(ctx, contextKeySessionID{}, sessionID)
}

func SessionIDFromContext(ctx context.Context) (SessionID, error) {
	sessionID, ok := ctx.Value(contextKeySessionID{}).(SessionID)
	if !ok {
		return "", fmt.Errorf("session id: %w", ErrNoValue)
	}

	return sessionID, nil
}
