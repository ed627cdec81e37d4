package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/eon-online/eon-server/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// PlayerIDKey is the context key for the caller's player ID
const PlayerIDKey contextKey = "player_id"

// WithPlayerID adds a player ID to the context
func WithPlayerID(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, PlayerIDKey, playerID)
}

// PlayerID retrieves the caller's player ID from the context
func PlayerID(ctx context.Context) string {
	if v := ctx.Value(PlayerIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return EmptyPlayerID
}

// Identity extracts the caller's player ID from the identity header and stores
// it in the request context. A malformed UUID is treated as absent; handlers
// that need an identity reject the request themselves.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderPlayerID)
		if raw == EmptyPlayerID {
			next.ServeHTTP(w, r)
			return
		}

		if _, err := uuid.Parse(raw); err != nil {
			log := logger.FromContext(r.Context())
			log.Warn(LogMsgMalformedPlayerID, "path", r.URL.Path)
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithPlayerID(r.Context(), raw)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
