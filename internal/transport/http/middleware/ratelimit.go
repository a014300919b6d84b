package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"campuspress/internal/transport/http/response"
)

const (
	rateWindow      = time.Minute
	rateWindowLimit = 60
)

// RateLimit guards upload endpoints with a per-IP sliding window in
// redis plus a process-local token bucket. With a nil client only the
// local bucket applies.
func RateLimit(client *redisv9.Client) gin.HandlerFunc {
	localLimiter := rate.NewLimiter(50, 20)

	return func(c *gin.Context) {
		if client != nil && !allowRemote(c, client) {
			response.Error(c, 429, "too many requests")
			c.Abort()
			return
		}

		if !localLimiter.Allow() {
			response.Error(c, 429, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

func allowRemote(c *gin.Context, client *redisv9.Client) bool {
	ctx := c.Request.Context()
	key := "rate_limit:" + c.ClientIP()

	now := time.Now().UnixNano()
	clearBefore := now - rateWindow.Nanoseconds()

	if err := client.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(clearBefore, 10)).Err(); err != nil {
		log.Printf("rate limit trim window failed: %v", err)
	}

	count, err := client.ZCard(ctx, key).Result()
	if err != nil {
		// Fail open when redis is unreachable.
		log.Printf("rate limit count failed: %v", err)
		return true
	}
	if count >= rateWindowLimit {
		return false
	}

	if err := client.ZAdd(ctx, key, redisv9.Z{Score: float64(now), Member: now}).Err(); err != nil {
		log.Printf("rate limit record request failed: %v", err)
	}
	client.Expire(ctx, key, rateWindow)
	return true
}
