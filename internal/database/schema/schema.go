package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Game Catalog Schema

CREATE TABLE IF NOT EXISTS games (
    id SERIAL PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    price NUMERIC(10,2) NOT NULL DEFAULT 0,
    discount INTEGER NOT NULL DEFAULT 0,
    platform VARCHAR(50) NOT NULL DEFAULT 'pc'
);

-- Lootbox Schema

CREATE TABLE IF NOT EXISTS lootboxes (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    rarity VARCHAR(50) NOT NULL,
    price NUMERIC(10,2) NOT NULL DEFAULT 0,
    cooldown_hours INTEGER NOT NULL DEFAULT 24,
    image_url TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS lootbox_items (
    id SERIAL PRIMARY KEY,
    lootbox_id INTEGER NOT NULL REFERENCES lootboxes(id) ON DELETE CASCADE,
    item_type VARCHAR(50) NOT NULL,
    item_id INTEGER,
    item_name VARCHAR(200) NOT NULL,
    value INTEGER NOT NULL DEFAULT 0,
    probability DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_lootbox_items_lootbox_id ON lootbox_items (lootbox_id);

-- The composite primary key doubles as the uniqueness guarantee for the
-- cooldown upsert.
CREATE TABLE IF NOT EXISTS user_lootbox_cooldowns (
    user_id TEXT NOT NULL,
    lootbox_id INTEGER NOT NULL REFERENCES lootboxes(id) ON DELETE CASCADE,
    last_opened_at TIMESTAMPTZ NOT NULL,
    next_available_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_id, lootbox_id)
);

CREATE TABLE IF NOT EXISTS user_lootbox_history (
    id SERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    lootbox_id INTEGER NOT NULL REFERENCES lootboxes(id) ON DELETE CASCADE,
    item_won_type VARCHAR(50) NOT NULL,
    item_won_id INTEGER,
    item_won_name VARCHAR(200) NOT NULL,
    value_won INTEGER NOT NULL DEFAULT 0,
    opened_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_lootbox_history_user ON user_lootbox_history (user_id, opened_at DESC);

-- Balance Schema

CREATE TABLE IF NOT EXISTS user_balance (
    user_id TEXT PRIMARY KEY,
    cashback_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
    bonus_points INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Promo Code Schema

CREATE TABLE IF NOT EXISTS promo_codes (
    id SERIAL PRIMARY KEY,
    code VARCHAR(64) UNIQUE NOT NULL,
    discount_percent INTEGER NOT NULL,
    max_uses INTEGER,
    current_uses INTEGER NOT NULL DEFAULT 0,
    valid_from TIMESTAMPTZ,
    valid_until TIMESTAMPTZ,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    min_purchase_amount NUMERIC(10,2),
    description TEXT
);

CREATE TABLE IF NOT EXISTS promo_code_usage (
    id SERIAL PRIMARY KEY,
    promo_code_id INTEGER NOT NULL REFERENCES promo_codes(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    discount_amount NUMERIC(10,2) NOT NULL,
    used_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Wishlist Schema

CREATE TABLE IF NOT EXISTS wishlist (
    id SERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    notify_on_sale BOOLEAN NOT NULL DEFAULT FALSE,
    added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, game_id)
);

-- Price History Schema

CREATE TABLE IF NOT EXISTS price_history (
    id SERIAL PRIMARY KEY,
    game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    price NUMERIC(10,2) NOT NULL,
    discount_percent INTEGER DEFAULT 0,
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_price_history_game ON price_history (game_id, recorded_at);

-- Gift Schema

CREATE TABLE IF NOT EXISTS gifts (
    id SERIAL PRIMARY KEY,
    sender_id TEXT NOT NULL,
    recipient_email VARCHAR(254) NOT NULL,
    game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    gift_code VARCHAR(64) UNIQUE NOT NULL,
    message TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    redeemed_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_gifts_sender ON gifts (sender_id);
`

// SeedSQL loads a minimal starting dataset for local development
const SeedSQL = `
INSERT INTO lootboxes (name, rarity, price, cooldown_hours) VALUES
('Bronze Crate', 'common', 0, 24),
('Silver Crate', 'rare', 4.99, 24),
('Gold Crate', 'legendary', 9.99, 72)
ON CONFLICT DO NOTHING;

INSERT INTO lootbox_items (lootbox_id, item_type, item_name, value, probability) VALUES
(1, 'discount', '5% Discount Voucher', 50, 60),
(1, 'cosmetic', 'Bronze Avatar Frame', 0, 35),
(1, 'currency', 'Small Coin Pouch', 100, 5),
(2, 'discount', '10% Discount Voucher', 100, 45),
(2, 'cosmetic', 'Silver Avatar Frame', 0, 40),
(2, 'currency', 'Coin Pouch', 250, 15),
(3, 'discount', '25% Discount Voucher', 250, 30),
(3, 'cosmetic', 'Golden Avatar Frame', 0, 45),
(3, 'currency', 'Large Coin Pouch', 1000, 25)
ON CONFLICT DO NOTHING;
`
