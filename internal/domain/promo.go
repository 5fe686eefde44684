package domain

import "time"

// PromoCode is a storefront discount code. MaxUses of zero means unlimited.
type PromoCode struct {
	ID                int        `json:"id"`
	Code              string     `json:"code"`
	DiscountPercent   int        `json:"discount_percent"`
	MaxUses           int        `json:"max_uses"`
	CurrentUses       int        `json:"current_uses"`
	ValidFrom         *time.Time `json:"valid_from,omitempty"`
	ValidUntil        *time.Time `json:"valid_until,omitempty"`
	IsActive          bool       `json:"is_active"`
	MinPurchaseAmount float64    `json:"min_purchase_amount"`
	Description       string     `json:"description,omitempty"`
}

// PromoApplication is the computed result of applying a promo code to a
// purchase amount.
type PromoApplication struct {
	Code            string  `json:"code"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	FinalAmount     float64 `json:"final_amount"`
	Description     string  `json:"description,omitempty"`
}
