package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/logger"
)

var errMissingBearer = fmt.Errorf("%w: missing bearer token", domain.ErrInvalidToken)

type contextKey string

const accountIDKey contextKey = "account_id"

// WithAccountID returns a context carrying the authenticated account id
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AccountIDFromContext returns the authenticated account id, if any
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok && id != ""
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := claimsFromRequest(tokens, r)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"error", err)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), claims.Subject)))
		})
	}
}

// OptionalAuth attaches the account id when a valid token is present and
// otherwise passes the request through unchanged
func OptionalAuth(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := claimsFromRequest(tokens, r); err == nil {
				r = r.WithContext(WithAccountID(r.Context(), claims.Subject))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func claimsFromRequest(tokens *TokenManager, r *http.Request) (*Claims, error) {
	header := r.Header.Get(HeaderAuthorization)
	if len(header) < len(BearerPrefix) || !strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
		return nil, errMissingBearer
	}
	return tokens.Parse(strings.TrimSpace(header[len(BearerPrefix):]))
}
