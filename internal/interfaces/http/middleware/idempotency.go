package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"press-kit.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware ensures that a create retried with the same
// Idempotency-Key returns the first response instead of a second record.
// Requests without the header pass through untouched.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		email, _ := GetUserEmail(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s", email, key)

		ctx := c.Request.Context()

		val, err := redis.Get(ctx, storageKey)
		if err == nil && val != "processing" {
			c.Header("Content-Type", "application/json")
			c.Header("X-Idempotency-Hit", "true")
			c.String(http.StatusOK, val)
			c.Abort()
			return
		}

		success, err := redis.SetNX(ctx, storageKey, "processing", LockDuration)
		if err != nil || !success {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "Request in progress",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		// Cache 2xx responses; clear the lock otherwise so a retry can run.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			_ = redis.Set(ctx, storageKey, w.body.String(), RetentionDuration)
		} else {
			_ = redis.Del(ctx, storageKey)
		}
	}
}
