package handler

import (
	"net/http"

	"github.com/gamevault/backend/internal/gift"
	"github.com/gamevault/backend/internal/logger"
)

type GiftHandler struct {
	service gift.Service
}

func NewGiftHandler(service gift.Service) *GiftHandler {
	return &GiftHandler{service: service}
}

// HandleListGifts returns the gifts the caller has sent
func (h *GiftHandler) HandleListGifts(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	gifts, err := h.service.ListSent(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListGiftsFailed, "user_id", userID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gifts)
}

type CreateGiftRequest struct {
	GameID         int    `json:"game_id" validate:"required,gt=0"`
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
	Message        string `json:"message" validate:"max=500"`
}

// HandleCreateGift purchases a game as a gift and returns the redemption code
func (h *GiftHandler) HandleCreateGift(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	var req CreateGiftRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create gift"); err != nil {
		return
	}

	created, err := h.service.Create(r.Context(), userID, req.RecipientEmail, req.GameID, req.Message)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgCreateGiftFailed,
			"user_id", userID, "game_id", req.GameID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

type RedeemGiftRequest struct {
	GiftCode string `json:"gift_code" validate:"required,min=4,max=64"`
}

// HandleRedeemGift redeems a gift by its code
func (h *GiftHandler) HandleRedeemGift(w http.ResponseWriter, r *http.Request) {
	var req RedeemGiftRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Redeem gift"); err != nil {
		return
	}

	redeemed, err := h.service.Redeem(r.Context(), req.GiftCode)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgRedeemGiftFailed, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, redeemed)
}
