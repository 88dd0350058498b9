package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ReelCasino_Go/internal/auth"
	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/mocks"
)

const testSecret = "an-integration-secret-of-32-bytes!"

type testServer struct {
	handler  http.Handler
	tokens   *auth.TokenManager
	accounts *mocks.MockAccountService
	slots    *mocks.MockSlotsService
	stats    *mocks.MockStatsService
	pool     *mocks.MockPool
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens, err := auth.NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	ts := &testServer{
		tokens:   tokens,
		accounts: mocks.NewMockAccountService(t),
		slots:    mocks.NewMockSlotsService(t),
		stats:    mocks.NewMockStatsService(t),
		pool:     mocks.NewMockPool(t),
	}
	srv := NewServer(Options{Port: 0, CORSOrigins: []string{"https://casino.example"}}, Services{
		DBPool:   ts.pool,
		Tokens:   tokens,
		Accounts: ts.accounts,
		Slots:    ts.slots,
		Stats:    ts.stats,
	})
	ts.handler = srv.Handler()
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body, accountID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if accountID != "" {
		token, _, err := ts.tokens.Issue(domain.Account{ID: accountID})
		require.NoError(t, err)
		req.Header.Set(HeaderAuthorization, auth.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_Healthz(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/account"},
		{http.MethodGet, "/api/v1/stats"},
		{http.MethodGet, "/api/v1/transactions"},
		{http.MethodPost, "/api/v1/machines/classic/spin"},
	} {
		t.Run(route.path, func(t *testing.T) {
			rec := ts.do(t, route.method, route.path, `{"bet":10}`, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestServer_SpinUsesTokenSubject(t *testing.T) {
	ts := newTestServer(t)
	ts.slots.On("Spin", mock.Anything, "acct-7", "classic", 10).Return(&domain.SpinOutcome{
		MachineID: "classic",
		Bet:       10,
		Trigger:   "loss",
		Balance:   990,
	}, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/machines/classic/spin", `{"bet":10}`, "acct-7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":990`)
}

func TestServer_PublicMachineRoutes(t *testing.T) {
	ts := newTestServer(t)
	ts.slots.On("ListMachines").Return([]domain.Machine{{ID: "classic"}})
	ts.slots.On("GetMachine", "classic").Return(domain.Machine{ID: "classic", Name: "Classic Slots"}, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/machines", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"classic"`)

	rec = ts.do(t, http.MethodGet, "/api/v1/machines/classic", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Classic Slots")
}

func TestServer_LeaderboardOptionalAuth(t *testing.T) {
	ts := newTestServer(t)
	board := &domain.Leaderboard{Entries: []domain.LeaderboardEntry{}, UserRank: domain.RankNotPresent}
	ts.stats.On("Leaderboard", mock.Anything, "").Return(board, nil).Once()
	ts.stats.On("Leaderboard", mock.Anything, "acct-3").Return(board, nil).Once()

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/leaderboard", "", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/leaderboard", "", "acct-3").Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/machines/classic/spin", nil)
	req.Header.Set("Origin", "https://casino.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://casino.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
