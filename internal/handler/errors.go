package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Header and query parameter error messages
	ErrMsgMissingUserHeader = "Missing X-User-Id header"
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidGameID     = "Invalid game ID"
	ErrMsgInvalidDays       = "Invalid days parameter"

	// Lootbox operation error messages
	ErrMsgOpenLootboxFailed   = "Failed to open lootbox"
	ErrMsgListLootboxesFailed = "Failed to list lootboxes"

	// Balance operation error messages
	ErrMsgGetBalanceFailed    = "Failed to get balance"
	ErrMsgUpdateBalanceFailed = "Failed to update balance"

	// Promo operation error messages
	ErrMsgApplyPromoFailed = "Failed to apply promo code"
	ErrMsgListPromosFailed = "Failed to list promo codes"

	// Wishlist operation error messages
	ErrMsgGetWishlistFailed        = "Failed to get wishlist"
	ErrMsgAddToWishlistFailed      = "Failed to add to wishlist"
	ErrMsgRemoveFromWishlistFailed = "Failed to remove from wishlist"

	// Price history operation error messages
	ErrMsgGetPriceHistoryFailed = "Failed to get price history"

	// Gift operation error messages
	ErrMsgListGiftsFailed  = "Failed to list gifts"
	ErrMsgCreateGiftFailed = "Failed to create gift"
	ErrMsgRedeemGiftFailed = "Failed to redeem gift"

	// Notification error messages
	ErrMsgSendNotificationFailed = "Failed to send notification"
)

// Success messages for API responses
const (
	MsgAddedToWishlist     = "Game added to wishlist"
	MsgRemovedFromWishlist = "Game removed from wishlist"
	MsgNotificationQueued  = "Notification sent"
)
