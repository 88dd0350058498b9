package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ReelCasino_Go/internal/logger"
	"github.com/osse101/ReelCasino_Go/internal/slots"
)

// URLParamMachineID names the machine path parameter
const URLParamMachineID = "machineID"

// SlotsHandler handles slots-related HTTP requests
type SlotsHandler struct {
	service slots.Service
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service slots.Service) *SlotsHandler {
	return &SlotsHandler{service: service}
}

// SpinRequest represents a request to spin a machine
type SpinRequest struct {
	Bet int `json:"bet" validate:"required,gt=0"`
}

// HandleListMachines returns the machine catalog
// @Summary List machines
// @Tags slots
// @Produce json
// @Success 200 {array} domain.Machine
// @Router /machines [get]
func (h *SlotsHandler) HandleListMachines(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.ListMachines())
}

// HandleGetMachine returns a single machine
// @Summary Get machine
// @Tags slots
// @Produce json
// @Param machineID path string true "Machine ID"
// @Success 200 {object} domain.Machine
// @Failure 404 {object} ErrorResponse
// @Router /machines/{machineID} [get]
func (h *SlotsHandler) HandleGetMachine(w http.ResponseWriter, r *http.Request) {
	machine, err := h.service.GetMachine(chi.URLParam(r, URLParamMachineID))
	if err != nil {
		respondServiceError(w, r, "Get machine", err)
		return
	}
	respondJSON(w, http.StatusOK, machine)
}

// HandleSpin processes a spin request
// @Summary Spin
// @Description Debit the bet, draw a grid, credit any payout and return the outcome
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param machineID path string true "Machine ID"
// @Param request body SpinRequest true "Bet"
// @Success 200 {object} domain.SpinOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /machines/{machineID}/spin [post]
func (h *SlotsHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	machineID := chi.URLParam(r, URLParamMachineID)
	outcome, err := h.service.Spin(r.Context(), accountID, machineID, req.Bet)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	logger.FromContext(r.Context()).Debug("Spin completed",
		"account_id", accountID,
		"machine_id", machineID,
		"payout", outcome.Result.Payout,
		"trigger", outcome.Trigger)

	respondJSON(w, http.StatusOK, outcome)
}
