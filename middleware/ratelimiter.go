package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter bounds each client IP to the given number of requests per
// minute. Used on the auth and checkout endpoints.
func RateLimiter(perMinute int64) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  perMinute,
	}
	store := memory.NewStore()
	instance := limiter.New(store, rate)
	log.Printf("🛡️ Rate limiter configured: %d req/min per IP", perMinute)
	return mgin.NewMiddleware(instance)
}
