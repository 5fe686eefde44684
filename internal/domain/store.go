package domain

import "time"

// Game is the subset of catalog data the wishlist and price endpoints join
// against. The catalog itself is owned by another component.
type Game struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Discount int     `json:"discount"`
	Platform string  `json:"platform"`
}

// WishlistEntry is one game on a user's wishlist.
type WishlistEntry struct {
	ID           int       `json:"id"`
	GameID       int       `json:"game_id"`
	NotifyOnSale bool      `json:"notify_on_sale"`
	AddedAt      time.Time `json:"added_at"`
	Game         Game      `json:"game"`
}

// PricePoint is one recorded price observation for a game.
type PricePoint struct {
	Price           float64   `json:"price"`
	DiscountPercent int       `json:"discount"`
	RecordedAt      time.Time `json:"date"`
}

// PriceStats aggregates a game's full recorded price range.
type PriceStats struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	AvgPrice float64 `json:"avg_price"`
}

// Gift is a game sent to another user, redeemable by code.
type Gift struct {
	ID             int        `json:"id"`
	SenderID       string     `json:"-"`
	RecipientEmail string     `json:"recipient_email"`
	GameID         int        `json:"game_id"`
	GameTitle      string     `json:"game_title"`
	GiftCode       string     `json:"gift_code"`
	Message        string     `json:"message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	RedeemedAt     *time.Time `json:"-"`
	Redeemed       bool       `json:"redeemed"`
}
