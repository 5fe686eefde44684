package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/gamevault/backend/internal/database"
	"github.com/gamevault/backend/internal/database/postgres"
	"github.com/gamevault/backend/internal/database/schema"
	"github.com/gamevault/backend/internal/domain"
)

// setupTestDB starts a throwaway Postgres container, applies the schema and
// returns a connected pool. The container and pool are torn down via t.Cleanup.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(15*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// MaxConns raised above the default so concurrency tests can actually
	// run their goroutines in parallel.
	pool, err := database.NewPool(connStr, 20, 30*time.Minute, time.Hour)
	require.NoError(t, err, "failed to connect to database")
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, schema.SchemaSQL)
	require.NoError(t, err, "failed to apply schema")

	return pool
}

// seedTestBox inserts a box with a discount, cosmetic and currency item and
// returns the box ID.
func seedTestBox(t *testing.T, pool *pgxpool.Pool, cooldownHours int) int {
	t.Helper()

	ctx := context.Background()

	var boxID int
	err := pool.QueryRow(ctx, `
		INSERT INTO lootboxes (name, rarity, price, cooldown_hours)
		VALUES ('Test Crate', 'common', 0, $1)
		RETURNING id
	`, cooldownHours).Scan(&boxID)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		INSERT INTO lootbox_items (lootbox_id, item_type, item_name, value, probability) VALUES
		($1, 'discount', '5% Discount Voucher', 50, 60),
		($1, 'cosmetic', 'Avatar Frame', 0, 35),
		($1, 'currency', 'Coin Pouch', 100, 5)
	`, boxID)
	require.NoError(t, err)

	return boxID
}

func TestLootboxRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	boxID := seedTestBox(t, pool, 24)
	repo := postgres.NewLootboxRepository(pool)

	t.Run("GetBox", func(t *testing.T) {
		box, err := repo.GetBox(ctx, boxID)
		require.NoError(t, err)
		assert.Equal(t, "Test Crate", box.Name)
		assert.Equal(t, 24, box.CooldownHours)
	})

	t.Run("GetBox unknown ID", func(t *testing.T) {
		_, err := repo.GetBox(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrBoxNotFound)
	})

	t.Run("GetBoxItems returns stable order", func(t *testing.T) {
		items, err := repo.GetBoxItems(ctx, boxID)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, domain.ItemTypeDiscount, items[0].ItemType)
		assert.Equal(t, domain.ItemTypeCosmetic, items[1].ItemType)
		assert.Equal(t, domain.ItemTypeCurrency, items[2].ItemType)
	})

	t.Run("GetCooldown nil for first-time user", func(t *testing.T) {
		cd, err := repo.GetCooldown(ctx, "fresh-user", boxID)
		require.NoError(t, err)
		assert.Nil(t, cd)
	})

	t.Run("ApplyOutcome discount item", func(t *testing.T) {
		userID := "draw-user"
		box, err := repo.GetBox(ctx, boxID)
		require.NoError(t, err)
		items, err := repo.GetBoxItems(ctx, boxID)
		require.NoError(t, err)
		discountItem := items[0]

		now := time.Now().UTC()
		next, err := repo.ApplyOutcome(ctx, userID, box, discountItem, now)
		require.NoError(t, err)
		assert.WithinDuration(t, now.Add(24*time.Hour), next, time.Second)

		// History ledger got exactly one row.
		var historyCount int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM user_lootbox_history WHERE user_id = $1`, userID).Scan(&historyCount))
		assert.Equal(t, 1, historyCount)

		// Cooldown row was upserted.
		cd, err := repo.GetCooldown(ctx, userID, boxID)
		require.NoError(t, err)
		require.NotNil(t, cd)
		assert.WithinDuration(t, next, cd.NextAvailableAt, time.Second)

		// Discount items credit bonus points on the same transaction.
		var bonusPoints int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT bonus_points FROM user_balance WHERE user_id = $1`, userID).Scan(&bonusPoints))
		assert.Equal(t, discountItem.Value, bonusPoints)

		// A second draw inside the window is rejected under the lock and
		// leaves no trace.
		_, err = repo.ApplyOutcome(ctx, userID, box, discountItem, time.Now().UTC())
		var cdErr domain.ErrBoxOnCooldown
		require.ErrorAs(t, err, &cdErr)
		assert.WithinDuration(t, next, cdErr.NextAvailable, time.Second)

		require.NoError(t, pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM user_lootbox_history WHERE user_id = $1`, userID).Scan(&historyCount))
		assert.Equal(t, 1, historyCount, "rejected draw must not append history")

		require.NoError(t, pool.QueryRow(ctx,
			`SELECT bonus_points FROM user_balance WHERE user_id = $1`, userID).Scan(&bonusPoints))
		assert.Equal(t, discountItem.Value, bonusPoints, "rejected draw must not credit points")
	})

	t.Run("ApplyOutcome non-discount item skips balance", func(t *testing.T) {
		userID := "cosmetic-user"
		box, err := repo.GetBox(ctx, boxID)
		require.NoError(t, err)
		items, err := repo.GetBoxItems(ctx, boxID)
		require.NoError(t, err)

		_, err = repo.ApplyOutcome(ctx, userID, box, items[1], time.Now().UTC())
		require.NoError(t, err)

		var balanceRows int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM user_balance WHERE user_id = $1`, userID).Scan(&balanceRows))
		assert.Equal(t, 0, balanceRows)
	})

	t.Run("ListBoxes availability", func(t *testing.T) {
		listings, err := repo.ListBoxes(ctx, "draw-user")
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.False(t, listings[0].IsAvailable)
		require.NotNil(t, listings[0].NextAvailableAt)

		listings, err = repo.ListBoxes(ctx, "fresh-user")
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.True(t, listings[0].IsAvailable)
		assert.Nil(t, listings[0].NextAvailableAt)
	})

	t.Run("GetHistory newest first with limit", func(t *testing.T) {
		userID := "history-user"
		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 3; i++ {
			_, err := pool.Exec(ctx, `
				INSERT INTO user_lootbox_history
					(user_id, lootbox_id, item_won_type, item_won_name, value_won, opened_at)
				VALUES ($1, $2, 'cosmetic', $3, 0, $4)
			`, userID, boxID, "Frame", base.Add(time.Duration(i)*time.Minute))
			require.NoError(t, err)
		}

		history, err := repo.GetHistory(ctx, userID, 2)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.True(t, history[0].OpenedAt.After(history[1].OpenedAt))
	})
}

func TestBalanceRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	repo := postgres.NewBalanceRepository(pool)
	userID := "balance-user"

	bal, err := repo.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, bal.CashbackBalance)
	assert.Zero(t, bal.BonusPoints)

	require.NoError(t, repo.AddCashback(ctx, userID, 5.50))
	require.NoError(t, repo.AddCashback(ctx, userID, 2.25))
	require.NoError(t, repo.AddBonusPoints(ctx, userID, 100))

	bal, err = repo.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 7.75, bal.CashbackBalance, 0.001)
	assert.Equal(t, 100, bal.BonusPoints)

	// Crediting an unseen user creates the row on the fly.
	require.NoError(t, repo.AddBonusPoints(ctx, "new-user", 10))
	bal, err = repo.GetOrCreate(ctx, "new-user")
	require.NoError(t, err)
	assert.Equal(t, 10, bal.BonusPoints)
}

func TestStoreRepositories_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	var gameID int
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO games (title, price, discount, platform)
		VALUES ('Space Raider', 29.99, 10, 'pc')
		RETURNING id
	`).Scan(&gameID))

	t.Run("promo usage", func(t *testing.T) {
		repo := postgres.NewPromoRepository(pool)

		_, err := pool.Exec(ctx, `
			INSERT INTO promo_codes (code, discount_percent, max_uses, is_active)
			VALUES ('SUMMER20', 20, 5, TRUE)
		`)
		require.NoError(t, err)

		promo, err := repo.GetByCode(ctx, "SUMMER20")
		require.NoError(t, err)
		assert.Equal(t, 20, promo.DiscountPercent)
		assert.Equal(t, 0, promo.CurrentUses)

		_, err = repo.GetByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrPromoNotFound)

		used, err := repo.HasUsed(ctx, promo.ID, "promo-user")
		require.NoError(t, err)
		assert.False(t, used)

		require.NoError(t, repo.RecordUsage(ctx, promo.ID, "promo-user", 6.00))

		used, err = repo.HasUsed(ctx, promo.ID, "promo-user")
		require.NoError(t, err)
		assert.True(t, used)

		used, err = repo.HasUsed(ctx, promo.ID, "another-user")
		require.NoError(t, err)
		assert.False(t, used)

		promo, err = repo.GetByCode(ctx, "SUMMER20")
		require.NoError(t, err)
		assert.Equal(t, 1, promo.CurrentUses)

		active, err := repo.ListActive(ctx, time.Now().UTC())
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "SUMMER20", active[0].Code)
	})

	t.Run("wishlist add is idempotent", func(t *testing.T) {
		repo := postgres.NewWishlistRepository(pool)
		userID := "wishlist-user"

		require.NoError(t, repo.Add(ctx, userID, gameID, true))
		require.NoError(t, repo.Add(ctx, userID, gameID, false)) // duplicate, ignored

		entries, err := repo.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Space Raider", entries[0].Game.Title)
		assert.True(t, entries[0].NotifyOnSale)

		require.NoError(t, repo.Remove(ctx, userID, gameID))
		entries, err = repo.List(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("price snapshot and stats", func(t *testing.T) {
		repo := postgres.NewPriceHistoryRepository(pool)

		recorded, err := repo.RecordSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, recorded)

		points, err := repo.GetRecent(ctx, gameID, 30)
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.InDelta(t, 29.99, points[0].Price, 0.001)
		assert.Equal(t, 10, points[0].DiscountPercent)

		stats, err := repo.GetStats(ctx, gameID)
		require.NoError(t, err)
		assert.InDelta(t, 29.99, stats.MinPrice, 0.001)
		assert.InDelta(t, 29.99, stats.MaxPrice, 0.001)
	})

	t.Run("gift lifecycle", func(t *testing.T) {
		repo := postgres.NewGiftRepository(pool)

		gift := &domain.Gift{
			SenderID:       "gift-sender",
			RecipientEmail: "friend@example.com",
			GameID:         gameID,
			GiftCode:       "GIFT-AAAA-BBBB-CCCC",
			Message:        "enjoy",
		}
		require.NoError(t, repo.Create(ctx, gift))
		assert.NotZero(t, gift.ID)
		assert.False(t, gift.CreatedAt.IsZero())

		redeemed, err := repo.Redeem(ctx, gift.GiftCode, time.Now().UTC())
		require.NoError(t, err)
		assert.True(t, redeemed.Redeemed)
		assert.Equal(t, "Space Raider", redeemed.GameTitle)

		_, err = repo.Redeem(ctx, gift.GiftCode, time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrGiftAlreadyRedeemed)

		_, err = repo.Redeem(ctx, "GIFT-XXXX-XXXX-XXXX", time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrGiftNotFound)

		sent, err := repo.ListSent(ctx, "gift-sender")
		require.NoError(t, err)
		require.Len(t, sent, 1)
		assert.True(t, sent[0].Redeemed)
	})
}
