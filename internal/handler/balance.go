package handler

import (
	"net/http"

	"github.com/gamevault/backend/internal/balance"
	"github.com/gamevault/backend/internal/logger"
)

type BalanceHandler struct {
	service balance.Service
}

func NewBalanceHandler(service balance.Service) *BalanceHandler {
	return &BalanceHandler{service: service}
}

// HandleGetBalance returns the caller's cashback balance and bonus points
func (h *BalanceHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	bal, err := h.service.Get(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetBalanceFailed, "user_id", userID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, bal)
}

type AdjustBalanceRequest struct {
	Action string  `json:"action" validate:"required,oneof=add_cashback add_bonus"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// HandleAdjustBalance applies a cashback or bonus point credit and returns the
// updated balance
func (h *BalanceHandler) HandleAdjustBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	var req AdjustBalanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adjust balance"); err != nil {
		return
	}

	if err := h.service.Adjust(r.Context(), userID, req.Action, req.Amount); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgUpdateBalanceFailed,
			"user_id", userID, "action", req.Action, "error", err)
		respondServiceError(w, err)
		return
	}

	bal, err := h.service.Get(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetBalanceFailed, "user_id", userID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, bal)
}
