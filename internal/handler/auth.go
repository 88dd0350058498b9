package handler

import (
	"net/http"
	"time"

	"github.com/osse101/ReelCasino_Go/internal/account"
	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/logger"
)

// TokenIssuer signs session tokens for accounts
type TokenIssuer interface {
	Issue(account domain.Account) (string, time.Time, error)
}

// AuthHandler handles registration, login and demo sessions
type AuthHandler struct {
	accounts account.Service
	tokens   TokenIssuer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts account.Service, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,printascii"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents a request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries a session token and the account it belongs to
type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Account   domain.Account `json:"account"`
}

// HandleRegister creates an account and starts a session
// @Summary Register
// @Description Create an account with the starting balance and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
		return
	}

	acct, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, "Register", err)
		return
	}

	h.respondWithSession(w, r, http.StatusCreated, acct)
}

// HandleLogin verifies credentials and starts a session
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	acct, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, "Login", err)
		return
	}

	h.respondWithSession(w, r, http.StatusOK, acct)
}

// HandleDemo starts a session on a fresh demo account
// @Summary Demo session
// @Description Create a throwaway demo account with demo credits
// @Tags auth
// @Produce json
// @Success 201 {object} AuthResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/demo [post]
func (h *AuthHandler) HandleDemo(w http.ResponseWriter, r *http.Request) {
	acct, err := h.accounts.StartDemo(r.Context())
	if err != nil {
		respondServiceError(w, r, "Start demo", err)
		return
	}

	logger.FromContext(r.Context()).Info(MsgDemoStarted, "account_id", acct.ID)
	h.respondWithSession(w, r, http.StatusCreated, acct)
}

func (h *AuthHandler) respondWithSession(w http.ResponseWriter, r *http.Request, status int, acct *domain.Account) {
	token, expiresAt, err := h.tokens.Issue(*acct)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgIssueTokenFailed, "error", err, "account_id", acct.ID)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}

	respondJSON(w, status, AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   *acct,
	})
}

// HandleGetAccount returns the authenticated account
// @Summary Current account
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Account
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /account [get]
func HandleGetAccount(accounts account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := requireAccountID(w, r)
		if !ok {
			return
		}

		acct, err := accounts.GetAccount(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get account", err)
			return
		}

		respondJSON(w, http.StatusOK, acct)
	}
}
