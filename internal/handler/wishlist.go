package handler

import (
	"net/http"
	"strconv"

	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/wishlist"
)

type WishlistHandler struct {
	service wishlist.Service
}

func NewWishlistHandler(service wishlist.Service) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// HandleGetWishlist returns the caller's wishlist entries
func (h *WishlistHandler) HandleGetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	entries, err := h.service.List(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetWishlistFailed, "user_id", userID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

type AddToWishlistRequest struct {
	GameID       int  `json:"game_id" validate:"required,gt=0"`
	NotifyOnSale bool `json:"notify_on_sale"`
}

// HandleAddToWishlist adds a game to the caller's wishlist
func (h *WishlistHandler) HandleAddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	var req AddToWishlistRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add to wishlist"); err != nil {
		return
	}

	if err := h.service.Add(r.Context(), userID, req.GameID, req.NotifyOnSale); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgAddToWishlistFailed,
			"user_id", userID, "game_id", req.GameID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgAddedToWishlist})
}

// HandleRemoveFromWishlist removes a game from the caller's wishlist
func (h *WishlistHandler) HandleRemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	gameIDStr, ok := GetQueryParam(r, w, "game_id")
	if !ok {
		return
	}
	gameID, err := strconv.Atoi(gameIDStr)
	if err != nil || gameID <= 0 {
		http.Error(w, ErrMsgInvalidGameID, http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), userID, gameID); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgRemoveFromWishlistFailed,
			"user_id", userID, "game_id", gameID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRemovedFromWishlist})
}
