package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/mocks"
)

var tokenExpiry = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestHandleRegister(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockAccountService, *mocks.MockTokenIssuer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: RegisterRequest{Username: "player1", Email: "p1@example.com", Password: "secret123"},
			setupMock: func(a *mocks.MockAccountService, tk *mocks.MockTokenIssuer) {
				acct := &domain.Account{ID: "a1", Username: "player1", Balance: domain.RegisteredStartingBalance}
				a.On("Register", mock.Anything, "player1", "p1@example.com", "secret123").Return(acct, nil)
				tk.On("Issue", *acct).Return("signed-token", tokenExpiry, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"token":"signed-token"`,
		},
		{
			name:           "Invalid JSON",
			body:           "{not json",
			setupMock:      func(*mocks.MockAccountService, *mocks.MockTokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Validation Failure",
			body:           RegisterRequest{Username: "p", Email: "nope", Password: "1"},
			setupMock:      func(*mocks.MockAccountService, *mocks.MockTokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"fields"`,
		},
		{
			name: "Email Taken",
			body: RegisterRequest{Username: "player1", Email: "p1@example.com", Password: "secret123"},
			setupMock: func(a *mocks.MockAccountService, _ *mocks.MockTokenIssuer) {
				a.On("Register", mock.Anything, "player1", "p1@example.com", "secret123").
					Return(nil, fmt.Errorf("%w: p1@example.com", domain.ErrEmailTaken))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgEmailTakenError,
		},
		{
			name: "Token Failure",
			body: RegisterRequest{Username: "player1", Email: "p1@example.com", Password: "secret123"},
			setupMock: func(a *mocks.MockAccountService, tk *mocks.MockTokenIssuer) {
				a.On("Register", mock.Anything, "player1", "p1@example.com", "secret123").
					Return(&domain.Account{ID: "a1"}, nil)
				tk.On("Issue", mock.Anything).Return("", time.Time{}, errors.New("signing failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mocks.NewMockAccountService(t)
			tokens := mocks.NewMockTokenIssuer(t)
			tt.setupMock(accounts, tokens)

			w := httptest.NewRecorder()
			NewAuthHandler(accounts, tokens).HandleRegister(w, newJSONRequest(t, http.MethodPost, "/api/v1/auth/register", tt.body, ""))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleLogin(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		tokens := mocks.NewMockTokenIssuer(t)
		acct := &domain.Account{ID: "a1", Username: "player1", Email: "p1@example.com", Balance: 420}
		accounts.On("Login", mock.Anything, "p1@example.com", "secret123").Return(acct, nil)
		tokens.On("Issue", *acct).Return("signed-token", tokenExpiry, nil)

		w := httptest.NewRecorder()
		NewAuthHandler(accounts, tokens).HandleLogin(w, newJSONRequest(t, http.MethodPost, "/api/v1/auth/login",
			LoginRequest{Email: "p1@example.com", Password: "secret123"}, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[AuthResponse](t, w)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, tokenExpiry, resp.ExpiresAt.UTC())
		assert.Equal(t, 420, resp.Account.Balance)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		tokens := mocks.NewMockTokenIssuer(t)
		accounts.On("Login", mock.Anything, "p1@example.com", "wrong").Return(nil, domain.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		NewAuthHandler(accounts, tokens).HandleLogin(w, newJSONRequest(t, http.MethodPost, "/api/v1/auth/login",
			LoginRequest{Email: "p1@example.com", Password: "wrong"}, ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidCredentialsError)
	})
}

func TestHandleDemo(t *testing.T) {
	accounts := mocks.NewMockAccountService(t)
	tokens := mocks.NewMockTokenIssuer(t)
	acct := &domain.Account{ID: "d1", Username: "DemoPlayer-1a2b3c4d", Balance: domain.DemoStartingBalance, IsDemo: true}
	accounts.On("StartDemo", mock.Anything).Return(acct, nil)
	tokens.On("Issue", *acct).Return("demo-token", tokenExpiry, nil)

	w := httptest.NewRecorder()
	NewAuthHandler(accounts, tokens).HandleDemo(w, newJSONRequest(t, http.MethodPost, "/api/v1/auth/demo", nil, ""))

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[AuthResponse](t, w)
	assert.True(t, resp.Account.IsDemo)
	assert.Equal(t, domain.DemoStartingBalance, resp.Account.Balance)
}

func TestHandleGetAccount(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		accounts.On("GetAccount", mock.Anything, "a1").Return(&domain.Account{ID: "a1", Balance: 77}, nil)

		w := httptest.NewRecorder()
		HandleGetAccount(accounts).ServeHTTP(w, newJSONRequest(t, http.MethodGet, "/api/v1/account", nil, "a1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 77, decodeBody[domain.Account](t, w).Balance)
	})

	t.Run("Missing Identity", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)

		w := httptest.NewRecorder()
		HandleGetAccount(accounts).ServeHTTP(w, newJSONRequest(t, http.MethodGet, "/api/v1/account", nil, ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Deleted Account", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		accounts.On("GetAccount", mock.Anything, "gone").Return(nil, domain.ErrAccountNotFound)

		w := httptest.NewRecorder()
		HandleGetAccount(accounts).ServeHTTP(w, newJSONRequest(t, http.MethodGet, "/api/v1/account", nil, "gone"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
