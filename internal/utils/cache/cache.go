package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a best-effort read cache for the available-foods listing. A nil
// Cache (or an unreachable redis) degrades to a miss on every call; the
// store stays the source of truth.
type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	r := redis.NewClient(&redis.Options{Addr: addr})
	_ = r.WithTimeout(2 * time.Second)
	return &Cache{rdb: r}
}

func NewWithClient(rdb *redis.Client) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb}
}

func (c *Cache) GetAvailableFoods(ctx context.Context, search, order string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, c.listingKey(ctx, search, order)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *Cache) SetAvailableFoods(ctx context.Context, search, order string, payload []byte) {
	if c == nil {
		return
	}
	_ = c.rdb.Set(ctx, c.listingKey(ctx, search, order), payload, TTLAvailableFoods).Err()
}

// Invalidate bumps the generation counter so every cached listing key goes
// stale at once.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.rdb.Incr(ctx, KeyFoodsGeneration).Err()
}

func (c *Cache) listingKey(ctx context.Context, search, order string) string {
	gen, err := c.rdb.Get(ctx, KeyFoodsGeneration).Result()
	if err != nil {
		gen = "0"
	}
	return fmt.Sprintf(KeyAvailableFoods, gen, search, order)
}
