package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/platform/logging"
	"github.com/arimodu/shopper/internal/ports"
)

type sessionKey struct{}

// sessionInfo is what RequireSession stores for downstream handlers.
type sessionInfo struct {
	userID string
	token  string
}

// WithSession returns a new context carrying the authenticated user id and the
// raw session token it was resolved from.
func WithSession(ctx context.Context, userID, token string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionInfo{userID: userID, token: token})
}

// UserIDFromContext returns the id of the authenticated caller, or an empty
// string outside RequireSession.
func UserIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(sessionKey{}).(sessionInfo); ok {
		return s.userID
	}
	return ""
}

// SessionTokenFromContext returns the raw session token of the request, or an
// empty string outside RequireSession.
func SessionTokenFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(sessionKey{}).(sessionInfo); ok {
		return s.token
	}
	return ""
}

// RequireSession returns middleware that resolves the session cookie named
// cookieName through auth. Requests without a valid session are answered with
// 401 before the wrapped handler runs. The request logger gains a user_id
// attribute.
func RequireSession(auth ports.AuthService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var token string
			if c, err := r.Cookie(cookieName); err == nil {
				token = c.Value
			}

			userID, err := auth.Authenticate(ctx, token)
			if err != nil {
				logging.FromContext(ctx).DebugContext(ctx, "session rejected", slog.Any("error", err))
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx = WithSession(ctx, userID, token)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("user_id", userID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
