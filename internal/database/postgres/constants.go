package postgres

// =============================================================================
// Advisory Lock Constants
// =============================================================================

const (
	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	// HashSeparator is the separator used when combining userID and boxID for advisory lock hashing
	HashSeparator = ":"

	// HashMaskPositiveInt64 masks the MSB so advisory lock keys are positive int64 values
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// =============================================================================
// Lootbox SQL
// =============================================================================

const (
	SQLSelectLootbox = `
		SELECT id, name, rarity, price, cooldown_hours, COALESCE(image_url, ''), created_at
		FROM lootboxes
		WHERE id = $1
	`

	// SQLSelectLootboxItems keeps a deterministic order so the weighted walk
	// sees the same sequence on every call.
	SQLSelectLootboxItems = `
		SELECT id, lootbox_id, item_type, COALESCE(item_id, 0), item_name, value, probability
		FROM lootbox_items
		WHERE lootbox_id = $1
		ORDER BY id
	`

	SQLSelectCooldown = `
		SELECT user_id, lootbox_id, last_opened_at, next_available_at
		FROM user_lootbox_cooldowns
		WHERE user_id = $1 AND lootbox_id = $2
	`

	SQLInsertHistory = `
		INSERT INTO user_lootbox_history
			(user_id, lootbox_id, item_won_type, item_won_id, item_won_name, value_won, opened_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	SQLUpsertCooldown = `
		INSERT INTO user_lootbox_cooldowns (user_id, lootbox_id, last_opened_at, next_available_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, lootbox_id) DO UPDATE
		SET last_opened_at = EXCLUDED.last_opened_at,
		    next_available_at = EXCLUDED.next_available_at
	`

	SQLListLootboxes = `
		SELECT l.id, l.name, l.rarity, l.price, l.cooldown_hours, COALESCE(l.image_url, ''), l.created_at,
		       uc.next_available_at
		FROM lootboxes l
		LEFT JOIN user_lootbox_cooldowns uc
		       ON l.id = uc.lootbox_id AND uc.user_id = $1
		ORDER BY l.price ASC, l.rarity
	`

	SQLSelectHistory = `
		SELECT id, user_id, lootbox_id, item_won_type, COALESCE(item_won_id, 0), item_won_name, value_won, opened_at
		FROM user_lootbox_history
		WHERE user_id = $1
		ORDER BY opened_at DESC
		LIMIT $2
	`
)

// =============================================================================
// Balance SQL
// =============================================================================

const (
	SQLEnsureBalanceRow = `
		INSERT INTO user_balance (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`

	SQLSelectBalance = `
		SELECT user_id, cashback_balance, bonus_points, updated_at
		FROM user_balance
		WHERE user_id = $1
	`

	SQLAddCashback = `
		INSERT INTO user_balance (user_id, cashback_balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET cashback_balance = user_balance.cashback_balance + EXCLUDED.cashback_balance,
		    updated_at = NOW()
	`

	SQLAddBonusPoints = `
		INSERT INTO user_balance (user_id, bonus_points)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET bonus_points = user_balance.bonus_points + EXCLUDED.bonus_points,
		    updated_at = NOW()
	`
)

// =============================================================================
// Promo SQL
// =============================================================================

const (
	SQLSelectPromoByCode = `
		SELECT id, code, discount_percent, COALESCE(max_uses, 0), current_uses,
		       valid_from, valid_until, is_active, COALESCE(min_purchase_amount, 0),
		       COALESCE(description, '')
		FROM promo_codes
		WHERE UPPER(code) = $1
	`

	SQLCountPromoUsageByUser = `
		SELECT COUNT(*)
		FROM promo_code_usage
		WHERE promo_code_id = $1 AND user_id = $2
	`

	SQLIncrementPromoUses = `
		UPDATE promo_codes
		SET current_uses = current_uses + 1
		WHERE id = $1
	`

	SQLInsertPromoUsage = `
		INSERT INTO promo_code_usage (promo_code_id, user_id, discount_amount, used_at)
		VALUES ($1, $2, $3, NOW())
	`

	SQLListActivePromos = `
		SELECT id, code, discount_percent, COALESCE(max_uses, 0), current_uses,
		       valid_from, valid_until, is_active, COALESCE(min_purchase_amount, 0),
		       COALESCE(description, '')
		FROM promo_codes
		WHERE is_active = TRUE
		  AND (valid_from IS NULL OR valid_from <= $1)
		  AND (valid_until IS NULL OR valid_until >= $1)
		  AND (max_uses IS NULL OR max_uses = 0 OR current_uses < max_uses)
		ORDER BY discount_percent DESC
	`
)

// =============================================================================
// Wishlist SQL
// =============================================================================

const (
	SQLSelectWishlist = `
		SELECT w.id, w.game_id, w.notify_on_sale, w.added_at,
		       g.title, g.price, g.discount, g.platform
		FROM wishlist w
		JOIN games g ON w.game_id = g.id
		WHERE w.user_id = $1
		ORDER BY w.added_at DESC
	`

	SQLInsertWishlistEntry = `
		INSERT INTO wishlist (user_id, game_id, notify_on_sale, added_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, game_id) DO NOTHING
	`

	SQLDeleteWishlistEntry = `
		DELETE FROM wishlist WHERE user_id = $1 AND game_id = $2
	`
)

// =============================================================================
// Price History SQL
// =============================================================================

const (
	SQLSelectRecentPrices = `
		SELECT price, COALESCE(discount_percent, 0), recorded_at
		FROM price_history
		WHERE game_id = $1
		  AND recorded_at >= CURRENT_DATE - $2 * INTERVAL '1 day'
		ORDER BY recorded_at ASC
	`

	SQLSelectPriceStats = `
		SELECT COALESCE(MIN(price), 0), COALESCE(MAX(price), 0), COALESCE(AVG(price), 0)
		FROM price_history
		WHERE game_id = $1
	`

	SQLInsertPriceSnapshot = `
		INSERT INTO price_history (game_id, price, discount_percent, recorded_at)
		SELECT id, price, discount, NOW()
		FROM games
	`
)

// =============================================================================
// Gift SQL
// =============================================================================

const (
	SQLSelectSentGifts = `
		SELECT g.id, g.recipient_email, g.game_id, g.gift_code,
		       COALESCE(g.message, ''), g.created_at, g.redeemed_at, gm.title
		FROM gifts g
		JOIN games gm ON g.game_id = gm.id
		WHERE g.sender_id = $1
		ORDER BY g.created_at DESC
	`

	SQLInsertGift = `
		INSERT INTO gifts (sender_id, recipient_email, game_id, gift_code, message, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	SQLSelectGiftByCodeForUpdate = `
		SELECT g.id, g.sender_id, g.recipient_email, g.game_id, g.gift_code,
		       COALESCE(g.message, ''), g.created_at, g.redeemed_at, gm.title
		FROM gifts g
		JOIN games gm ON g.game_id = gm.id
		WHERE g.gift_code = $1
		FOR UPDATE OF g
	`

	SQLMarkGiftRedeemed = `
		UPDATE gifts SET redeemed_at = $2 WHERE id = $1
	`
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)
