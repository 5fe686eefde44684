package handler

import (
	"net/http"
	"strconv"

	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/pricehistory"
)

type PriceHistoryHandler struct {
	service pricehistory.Service
}

func NewPriceHistoryHandler(service pricehistory.Service) *PriceHistoryHandler {
	return &PriceHistoryHandler{service: service}
}

// HandleGetPriceHistory returns a game's recent price points with aggregate
// stats. Accepts an optional days query parameter.
func (h *PriceHistoryHandler) HandleGetPriceHistory(w http.ResponseWriter, r *http.Request) {
	gameIDStr, ok := GetQueryParam(r, w, "game_id")
	if !ok {
		return
	}
	gameID, err := strconv.Atoi(gameIDStr)
	if err != nil || gameID <= 0 {
		http.Error(w, ErrMsgInvalidGameID, http.StatusBadRequest)
		return
	}

	daysStr := GetOptionalQueryParam(r, "days", "0")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 0 {
		http.Error(w, ErrMsgInvalidDays, http.StatusBadRequest)
		return
	}

	history, err := h.service.Get(r.Context(), gameID, days)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetPriceHistoryFailed,
			"game_id", gameID, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}
