package lootbox

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gamevault/backend/internal/domain"
)

// cachedBoxConfig bundles a box with its prize table so both are fetched and
// expire together.
type cachedBoxConfig struct {
	Box   *domain.LootBox
	Items []domain.LootBoxItem
}

// configCache is an in-memory LRU for lootbox configuration.
// Box and item rows are read-only during normal operation, so a short TTL
// keeps admin edits visible without hitting storage on every draw.
type configCache struct {
	lru *expirable.LRU[int, *cachedBoxConfig]
}

func newConfigCache() *configCache {
	return &configCache{
		lru: expirable.NewLRU[int, *cachedBoxConfig](ConfigCacheSize, nil, ConfigCacheTTL),
	}
}

func (c *configCache) Get(boxID int) (*cachedBoxConfig, bool) {
	return c.lru.Get(boxID)
}

func (c *configCache) Set(boxID int, cfg *cachedBoxConfig) {
	c.lru.Add(boxID, cfg)
}
