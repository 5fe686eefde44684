package handler

import (
	"net/http"
	"time"

	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/lootbox"
)

type LootboxHandler struct {
	service lootbox.Service
}

func NewLootboxHandler(service lootbox.Service) *LootboxHandler {
	return &LootboxHandler{service: service}
}

type OpenLootboxRequest struct {
	LootboxID int `json:"lootbox_id" validate:"required,gt=0"`
}

// WonItem is the client-facing shape of a drawn item.
type WonItem struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type OpenLootboxResponse struct {
	Success       bool      `json:"success"`
	WonItem       WonItem   `json:"won_item"`
	NextAvailable time.Time `json:"next_available"`
}

// HandleOpenLootbox performs one draw for the calling user
func (h *LootboxHandler) HandleOpenLootbox(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	var req OpenLootboxRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open lootbox"); err != nil {
		return
	}

	result, err := h.service.Open(r.Context(), userID, req.LootboxID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgOpenLootboxFailed,
			"user_id", userID, "lootbox_id", req.LootboxID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, OpenLootboxResponse{
		Success: true,
		WonItem: WonItem{
			Type:  result.Item.ItemType,
			Name:  result.Item.ItemName,
			Value: result.Item.Value,
		},
		NextAvailable: result.NextAvailable,
	})
}

// HandleListLootboxes returns every box with the caller's availability plus
// their recent draw history
func (h *LootboxHandler) HandleListLootboxes(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListLootboxesFailed,
			"user_id", userID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
