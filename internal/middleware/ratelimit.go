package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// RateLimitConfig is a fixed window of Limit requests per Period for each client IP.
type RateLimitConfig struct {
	Limit  int64
	Period time.Duration
}

// RateLimiter returns a Gin middleware that limits requests per IP
func RateLimiter(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Period <= 0 {
		cfg.Period = time.Minute
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 100
	}

	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          "alumnihub",
		CleanUpInterval: cfg.Period,
	})
	instance := limiter.New(store, limiter.Rate{Period: cfg.Period, Limit: cfg.Limit})

	return ginlimiter.NewMiddleware(instance,
		ginlimiter.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Warn().Str("clientIp", c.ClientIP()).Str("path", c.Request.URL.Path).Msg("Rate limit exceeded")
			AbortWithError(c, dto.NewErrorDetail(http.StatusTooManyRequests, dto.ErrorCodeRateLimited, "Too many requests, slow down"))
		}),
		ginlimiter.WithErrorHandler(func(c *gin.Context, err error) {
			HandleAPIError(c, err)
			c.Abort()
		}),
	)
}
