package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/port"
)

// assetDetailsTTL bounds how long rendered asset details stay cached.
// Asset rows are immutable, so staleness only matters across deletes,
// which clear the entries explicitly.
const assetDetailsTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetAssetDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, detailsKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagAssetDetails(ctx context.Context, id db.UUID) (string, error) {
	val, err := c.client.Get(ctx, etagKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetAssetDetails(ctx context.Context, id db.UUID, data []byte) {
	log.Printf("creating cache entry for asset #%s...", id)

	if err := c.client.Set(ctx, detailsKey(id), data, assetDetailsTTL).Err(); err != nil {
		log.Printf("redis set failed for asset #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagAssetDetails(ctx context.Context, id db.UUID, etag string) {
	if err := c.client.Set(ctx, etagKey(id), etag, assetDetailsTTL).Err(); err != nil {
		log.Printf("redis set failed for asset #%s etag: %v", id, err)
	}
}

func (c *Cache) DeleteAssetDetails(ctx context.Context, id db.UUID) error {
	log.Printf("deleting cache entry for asset #%s...", id)

	if err := c.client.Del(ctx, detailsKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagAssetDetails(ctx context.Context, id db.UUID) error {
	if err := c.client.Del(ctx, etagKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func detailsKey(id db.UUID) string {
	return "asset:" + id.String()
}

func etagKey(id db.UUID) string {
	return "asset:" + id.String() + ":etag"
}
