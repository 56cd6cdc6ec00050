package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware is a fixed-window counter per client IP kept in redis.
// It runs ahead of authentication, so signed-in users share their IP's budget.
// A nil client disables limiting; a redis error rejects the request.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			logger.FromContext(ctx).Error("rate limit check failed: %v", err)
			response.Abort(c, http.StatusInternalServerError, response.CodeInternal, "Rate limit check failed")
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(int64(limit)-count, 0), 10))

		if count > int64(limit) {
			response.Abort(c, http.StatusTooManyRequests, response.CodeTooManyRequests, "Too many requests, please try again later")
			return
		}

		c.Next()
	}
}
