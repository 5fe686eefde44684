package handler

import (
	"net/http"

	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/promo"
)

type PromoHandler struct {
	service promo.Service
}

func NewPromoHandler(service promo.Service) *PromoHandler {
	return &PromoHandler{service: service}
}

type ApplyPromoRequest struct {
	Code           string  `json:"code" validate:"required,min=2,max=64"`
	PurchaseAmount float64 `json:"purchase_amount" validate:"required,gt=0"`
}

// HandleApplyPromo validates a promo code against a purchase amount and
// records the usage
func (h *PromoHandler) HandleApplyPromo(w http.ResponseWriter, r *http.Request) {
	// User header is optional here, anonymous carts may apply codes too.
	userID := r.Header.Get(UserIDHeader)

	var req ApplyPromoRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Apply promo code"); err != nil {
		return
	}

	application, err := h.service.Apply(r.Context(), req.Code, userID, req.PurchaseAmount)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgApplyPromoFailed, "code", req.Code, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, application)
}

// HandleListPromos returns the currently usable promo codes
func (h *PromoHandler) HandleListPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.service.ListActive(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListPromosFailed, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, promos)
}
