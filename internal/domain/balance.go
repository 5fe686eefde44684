package domain

import "time"

// UserBalance holds a user's cashback and bonus point counters.
// Both fields are only ever mutated additively.
type UserBalance struct {
	UserID          string    `json:"user_id"`
	CashbackBalance float64   `json:"cashback_balance"`
	BonusPoints     int       `json:"bonus_points"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Balance adjustment actions accepted by the balance endpoint.
const (
	BalanceActionAddCashback = "add_cashback"
	BalanceActionAddBonus    = "add_bonus"
)
