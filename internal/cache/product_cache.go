package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"

	"github.com/redis/go-redis/v9"
)

const notFoundMarker = "notfound"

// ProductCache is a cache-aside layer over product reads. Any redis failure
// falls through to the database; the cache is never load-bearing.
type ProductCache struct {
	Repo  *repository.ProductRepository
	Redis *redis.Client
	TTL   time.Duration
	Log   *slog.Logger
}

func NewProductCache(repo *repository.ProductRepository, rdb *redis.Client, log *slog.Logger) *ProductCache {
	return &ProductCache{
		Repo:  repo,
		Redis: rdb,
		TTL:   5 * time.Minute,
		Log:   log,
	}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *ProductCache) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	key := productKey(id)

	data, err := c.Redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
		}
		var p model.Product
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
		c.Log.Warn("failed to unmarshal cached product, falling back to db", "product_id", id)
	case errors.Is(err, redis.Nil):
		// cache miss
	default:
		c.Log.Warn("redis get failed, falling back to db", "product_id", id, "err", err)
	}

	p, err := c.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if setErr := c.Redis.Set(ctx, key, notFoundMarker, time.Minute).Err(); setErr != nil {
				c.Log.Warn("failed to cache notfound marker", "product_id", id, "err", setErr)
			}
		}
		return nil, err
	}

	if payload, merr := json.Marshal(p); merr == nil {
		if setErr := c.Redis.Set(ctx, key, payload, c.TTL).Err(); setErr != nil {
			c.Log.Warn("failed to cache product", "product_id", id, "err", setErr)
		}
	}
	return p, nil
}

// Invalidate drops the cached entry after a catalog mutation.
func (c *ProductCache) Invalidate(ctx context.Context, id int64) {
	if err := c.Redis.Del(ctx, productKey(id)).Err(); err != nil {
		c.Log.Warn("failed to invalidate product cache", "product_id", id, "err", err)
	}
}
