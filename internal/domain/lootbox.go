package domain

import "time"

// Item type tags stored on lootbox items. Only ItemTypeDiscount has a direct
// economic side effect (bonus point credit); other types are fulfilled by
// downstream systems consuming the history ledger.
const (
	ItemTypeDiscount = "discount"
	ItemTypeCosmetic = "cosmetic"
	ItemTypeCurrency = "currency"
)

// LootBox is a drawable container. Configuration data - created and edited
// through an out-of-band admin path, read-only during normal operation.
type LootBox struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Rarity        string    `json:"rarity"`
	Price         float64   `json:"price"`
	CooldownHours int       `json:"cooldown_hours"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// LootBoxItem is one weighted prize belonging to a lootbox. Probability is a
// relative weight, not a normalized probability - the draw divides by the sum.
type LootBoxItem struct {
	ID          int     `json:"id"`
	LootBoxID   int     `json:"lootbox_id"`
	ItemType    string  `json:"item_type"`
	ItemID      int     `json:"item_id"`
	ItemName    string  `json:"item_name"`
	Value       int     `json:"value"`
	Probability float64 `json:"probability"`
}

// LootBoxCooldown is the per (user, box) cooldown row. At most one row per
// pair; overwritten on every successful draw.
type LootBoxCooldown struct {
	UserID          string    `json:"user_id"`
	LootBoxID       int       `json:"lootbox_id"`
	LastOpenedAt    time.Time `json:"last_opened_at"`
	NextAvailableAt time.Time `json:"next_available_at"`
}

// LootBoxHistoryEntry is one row of the append-only draw ledger.
type LootBoxHistoryEntry struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	LootBoxID   int       `json:"lootbox_id"`
	ItemWonType string    `json:"item_won_type"`
	ItemWonID   int       `json:"item_won_id"`
	ItemWonName string    `json:"item_won_name"`
	ValueWon    int       `json:"value_won"`
	OpenedAt    time.Time `json:"opened_at"`
}

// LootBoxListing is a lootbox annotated with the caller's availability.
type LootBoxListing struct {
	LootBox
	IsAvailable     bool       `json:"is_available"`
	NextAvailableAt *time.Time `json:"next_available_at,omitempty"`
}

// DrawResult is the outcome of a successful lootbox open.
type DrawResult struct {
	Item          LootBoxItem
	NextAvailable time.Time
}
