package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Lootbox errors
	ErrMsgBoxNotFound   = "lootbox not found"
	ErrMsgBoxEmpty      = "lootbox has no items"
	ErrMsgZeroWeights   = "lootbox item weights sum to zero"
	ErrMsgBoxOnCooldown = "lootbox on cooldown"

	// Balance errors
	ErrMsgInvalidBalanceAction = "unknown balance action"
	ErrMsgNegativeAmount       = "amount must be positive"

	// Promo errors
	ErrMsgPromoNotFound    = "promo code not found"
	ErrMsgPromoInactive    = "promo code is deactivated"
	ErrMsgPromoNotStarted  = "promo code is not active yet"
	ErrMsgPromoExpired     = "promo code has expired"
	ErrMsgPromoExhausted   = "promo code usage limit reached"
	ErrMsgPromoMinPurchase = "purchase amount below promo code minimum"
	ErrMsgPromoAlreadyUsed = "promo code already used by this user"

	// Catalog errors
	ErrMsgGameNotFound = "game not found"

	// Gift errors
	ErrMsgGiftNotFound        = "gift not found"
	ErrMsgGiftAlreadyRedeemed = "gift already redeemed"

	// Database/System errors
	ErrMsgDatabaseError     = "database error"
	ErrMsgConnectionTimeout = "connection timeout"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Lootbox errors
	ErrBoxNotFound = errors.New(ErrMsgBoxNotFound)
	ErrBoxEmpty    = errors.New(ErrMsgBoxEmpty)
	ErrZeroWeights = errors.New(ErrMsgZeroWeights)

	// Balance errors
	ErrInvalidBalanceAction = errors.New(ErrMsgInvalidBalanceAction)
	ErrNegativeAmount       = errors.New(ErrMsgNegativeAmount)

	// Promo errors
	ErrPromoNotFound    = errors.New(ErrMsgPromoNotFound)
	ErrPromoInactive    = errors.New(ErrMsgPromoInactive)
	ErrPromoNotStarted  = errors.New(ErrMsgPromoNotStarted)
	ErrPromoExpired     = errors.New(ErrMsgPromoExpired)
	ErrPromoExhausted   = errors.New(ErrMsgPromoExhausted)
	ErrPromoMinPurchase = errors.New(ErrMsgPromoMinPurchase)
	ErrPromoAlreadyUsed = errors.New(ErrMsgPromoAlreadyUsed)

	// Catalog errors
	ErrGameNotFound = errors.New(ErrMsgGameNotFound)

	// Gift errors
	ErrGiftNotFound        = errors.New(ErrMsgGiftNotFound)
	ErrGiftAlreadyRedeemed = errors.New(ErrMsgGiftAlreadyRedeemed)

	// Database/System errors
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
)

// ErrBoxOnCooldown is returned when a lootbox draw is attempted before the
// pair's cooldown window has elapsed. It carries the reopen time so callers
// can report when the box becomes available again.
type ErrBoxOnCooldown struct {
	LootBoxID     int
	NextAvailable time.Time
}

func (e ErrBoxOnCooldown) Error() string {
	return fmt.Sprintf("%s: available at %s", ErrMsgBoxOnCooldown, e.NextAvailable.Format(time.RFC3339))
}

// Is allows errors.Is() to work with ErrBoxOnCooldown
func (e ErrBoxOnCooldown) Is(target error) bool {
	_, ok := target.(ErrBoxOnCooldown)
	return ok
}
