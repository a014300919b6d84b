package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"campuspress/internal/model"
)

// ArticleListCache keeps list pages in redis. Pages are keyed by a
// generation counter that every article creation bumps, so a write
// invalidates all cached pages at once without tracking their keys.
type ArticleListCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

type cachedPage struct {
	Items []model.Article `json:"items"`
	Total int64           `json:"total"`
}

func NewArticleListCache(client *redisv9.Client, ttl time.Duration) *ArticleListCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ArticleListCache{client: client, ttl: ttl}
}

func (c *ArticleListCache) GetPage(ctx context.Context, page, pageSize int) ([]model.Article, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	raw, err := c.client.Get(ctx, c.pageKey(gen, page, pageSize)).Result()
	if err == redisv9.Nil {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("redis get article page failed: %w", err)
	}

	var cached cachedPage
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, 0, false, fmt.Errorf("unmarshal cached article page failed: %w", err)
	}
	if cached.Items == nil {
		cached.Items = []model.Article{}
	}
	return cached.Items, cached.Total, true, nil
}

func (c *ArticleListCache) SetPage(ctx context.Context, page, pageSize int, items []model.Article, total int64) error {
	gen, err := c.generation(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(cachedPage{Items: items, Total: total})
	if err != nil {
		return fmt.Errorf("marshal article page failed: %w", err)
	}
	if err := c.client.Set(ctx, c.pageKey(gen, page, pageSize), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set article page failed: %w", err)
	}
	return nil
}

// Invalidate bumps the generation; stale pages expire via TTL.
func (c *ArticleListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, "articles:list:gen").Err(); err != nil {
		return fmt.Errorf("redis bump article list generation failed: %w", err)
	}
	return nil
}

func (c *ArticleListCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, "articles:list:gen").Int64()
	if err == redisv9.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get article list generation failed: %w", err)
	}
	return gen, nil
}

func (c *ArticleListCache) pageKey(gen int64, page, pageSize int) string {
	return fmt.Sprintf("articles:list:%d:p%d:s%d", gen, page, pageSize)
}
