package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/ReelCasino_Go/internal/auth"
	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/stats"
)

// HandleGetStats returns dashboard statistics for the authenticated account
// @Summary Account stats
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.AccountStats
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func HandleGetStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := requireAccountID(w, r)
		if !ok {
			return
		}

		summary, err := svc.AccountStats(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get stats", err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleGetLeaderboard returns the 24h winnings leaderboard. A valid token adds the caller's rank.
// @Summary Leaderboard
// @Tags stats
// @Produce json
// @Success 200 {object} domain.Leaderboard
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, _ := auth.AccountIDFromContext(r.Context())

		board, err := svc.Leaderboard(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, board)
	}
}

// HandleGetTransactions returns the authenticated account's history, newest first
// @Summary Transaction history
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param type query string false "all, spin or win"
// @Param search query string false "Case-insensitive game name substring"
// @Param limit query int false "1-1000, default 100"
// @Success 200 {array} domain.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [get]
func HandleGetTransactions(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := requireAccountID(w, r)
		if !ok {
			return
		}

		filterType := GetOptionalQueryParam(r, "type", domain.FilterAll)
		if !domain.IsValidFilterType(filterType) {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidFilterType, filterType))
			return
		}

		limit, ok := getOptionalIntParam(w, r, "limit", domain.DefaultHistoryLimit)
		if !ok {
			return
		}

		txns, err := svc.History(r.Context(), domain.TransactionFilter{
			AccountID: accountID,
			Type:      filterType,
			Search:    GetOptionalQueryParam(r, "search", ""),
			Limit:     limit,
		})
		if err != nil {
			respondServiceError(w, r, "Get transactions", err)
			return
		}
		if txns == nil {
			txns = []domain.Transaction{}
		}

		respondJSON(w, http.StatusOK, txns)
	}
}
