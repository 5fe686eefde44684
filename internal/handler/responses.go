package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gamevault/backend/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CooldownResponse is returned when a lootbox draw is rejected because the
// pair is still cooling down. next_available tells the client when to retry.
type CooldownResponse struct {
	Error         string    `json:"error"`
	NextAvailable time.Time `json:"next_available"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError translates a service error into a JSON error response.
// An active cooldown gets a dedicated payload carrying the reopen time.
func respondServiceError(w http.ResponseWriter, err error) {
	var cooldownErr domain.ErrBoxOnCooldown
	if errors.As(err, &cooldownErr) {
		respondJSON(w, http.StatusBadRequest, CooldownResponse{
			Error:         ErrMsgBoxOnCooldownError,
			NextAvailable: cooldownErr.NextAvailable,
		})
		return
	}

	status, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, status, userMsg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgResourceNotFoundErr = "Resource not found."

	// Lootbox messages
	ErrMsgBoxNotFoundError   = "Lootbox not found"
	ErrMsgBoxEmptyError      = "Lootbox has no items"
	ErrMsgBoxOnCooldownError = "Lootbox is on cooldown. Try again later"

	// Balance messages
	ErrMsgInvalidActionError  = "Unknown balance action"
	ErrMsgNegativeAmountError = "Amount must be positive"

	// Promo messages
	ErrMsgPromoNotFoundError    = "Promo code not found"
	ErrMsgPromoInactiveError    = "This promo code is no longer active"
	ErrMsgPromoNotStartedError  = "This promo code is not active yet"
	ErrMsgPromoExpiredError     = "This promo code has expired"
	ErrMsgPromoExhaustedError   = "This promo code has reached its usage limit"
	ErrMsgPromoMinPurchaseError = "Purchase amount is below the promo code minimum"
	ErrMsgPromoAlreadyUsedError = "You have already used this promo code"

	// Catalog messages
	ErrMsgGameNotFoundError = "Game not found"

	// Gift messages
	ErrMsgGiftNotFoundError        = "Gift code not found"
	ErrMsgGiftAlreadyRedeemedError = "This gift has already been redeemed"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrBoxNotFound):
		return http.StatusNotFound, ErrMsgBoxNotFoundError
	case errors.Is(err, domain.ErrBoxEmpty):
		return http.StatusNotFound, ErrMsgBoxEmptyError
	case errors.Is(err, domain.ErrZeroWeights):
		return http.StatusNotFound, ErrMsgBoxEmptyError
	case errors.Is(err, domain.ErrBoxOnCooldown{}):
		return http.StatusBadRequest, ErrMsgBoxOnCooldownError
	case errors.Is(err, domain.ErrInvalidBalanceAction):
		return http.StatusBadRequest, ErrMsgInvalidActionError
	case errors.Is(err, domain.ErrNegativeAmount):
		return http.StatusBadRequest, ErrMsgNegativeAmountError
	case errors.Is(err, domain.ErrPromoNotFound):
		return http.StatusNotFound, ErrMsgPromoNotFoundError
	case errors.Is(err, domain.ErrPromoInactive):
		return http.StatusBadRequest, ErrMsgPromoInactiveError
	case errors.Is(err, domain.ErrPromoNotStarted):
		return http.StatusBadRequest, ErrMsgPromoNotStartedError
	case errors.Is(err, domain.ErrPromoExpired):
		return http.StatusBadRequest, ErrMsgPromoExpiredError
	case errors.Is(err, domain.ErrPromoExhausted):
		return http.StatusBadRequest, ErrMsgPromoExhaustedError
	case errors.Is(err, domain.ErrPromoMinPurchase):
		return http.StatusBadRequest, ErrMsgPromoMinPurchaseError
	case errors.Is(err, domain.ErrPromoAlreadyUsed):
		return http.StatusBadRequest, ErrMsgPromoAlreadyUsedError
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFoundError
	case errors.Is(err, domain.ErrGiftNotFound):
		return http.StatusNotFound, ErrMsgGiftNotFoundError
	case errors.Is(err, domain.ErrGiftAlreadyRedeemed):
		return http.StatusConflict, ErrMsgGiftAlreadyRedeemedError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrConnectionTimeout):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
