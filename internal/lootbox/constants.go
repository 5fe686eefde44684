package lootbox

import "time"

// =============================================================================
// History Constants
// =============================================================================

const (
	// DefaultHistoryLimit caps the history entries returned by List
	DefaultHistoryLimit = 50
)

// =============================================================================
// Cache Constants
// =============================================================================

const (
	// ConfigCacheSize is the maximum number of boxes held in the config cache
	ConfigCacheSize = 128

	// ConfigCacheTTL bounds staleness of cached box configuration. Boxes are
	// edited through an out-of-band admin path, so a short TTL is enough.
	ConfigCacheTTL = 5 * time.Minute
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	LogMsgDrawApplied   = "Lootbox draw applied"
	LogMsgDrawLostRace  = "Lootbox draw rejected after losing cooldown race"
	LogMsgBoxOnCooldown = "Lootbox open rejected, cooldown active"
)
