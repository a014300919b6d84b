package cache

import (
	"context"
	"fmt"
	"strconv"

	redisv9 "github.com/redis/go-redis/v9"
)

const sectionCountKey = "articles:section_count"

// SectionCounter tracks how many articles each section has received.
// The section counter worker increments it from published-article
// events; the sections endpoint reads it.
type SectionCounter struct {
	client *redisv9.Client
}

func NewSectionCounter(client *redisv9.Client) *SectionCounter {
	return &SectionCounter{client: client}
}

func (c *SectionCounter) Incr(ctx context.Context, section string) error {
	if err := c.client.HIncrBy(ctx, sectionCountKey, section, 1).Err(); err != nil {
		return fmt.Errorf("redis incr section count failed: %w", err)
	}
	return nil
}

func (c *SectionCounter) All(ctx context.Context) (map[string]int64, error) {
	raw, err := c.client.HGetAll(ctx, sectionCountKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis read section counts failed: %w", err)
	}

	counts := make(map[string]int64, len(raw))
	for section, value := range raw {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse section count %q failed: %w", value, err)
		}
		counts[section] = count
	}
	return counts, nil
}
