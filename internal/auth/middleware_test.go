package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// echoAccount writes the account id found in the request context
func echoAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := AccountIDFromContext(r.Context())
	if !ok {
		id = "anonymous"
	}
	_, _ = w.Write([]byte(id))
}

func TestRequireAuth(t *testing.T) {
	m := newTestManager(t)
	token, _, err := m.Issue(domain.Account{ID: "acc-1"})
	require.NoError(t, err)

	handler := RequireAuth(m)(http.HandlerFunc(echoAccount))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + token, http.StatusOK, "acc-1"},
		{"lowercase scheme", "bearer " + token, http.StatusOK, "acc-1"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"bad token", "Bearer nope", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/account", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	m := newTestManager(t)
	token, _, err := m.Issue(domain.Account{ID: "acc-1"})
	require.NoError(t, err)

	handler := OptionalAuth(m)(http.HandlerFunc(echoAccount))

	for header, want := range map[string]string{
		"":                "anonymous",
		"Bearer garbage":  "anonymous",
		"Bearer " + token: "acc-1",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
		if header != "" {
			req.Header.Set(HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, rec.Body.String())
	}
}
