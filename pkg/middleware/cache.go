package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/wolverinesfitness/backend/pkg/logger"
	"github.com/wolverinesfitness/backend/pkg/metrics"
)

const cachePrefix = "cache:"

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponses serves public GET responses from Redis for the configured
// TTL. Authenticated reads bypass the cache; any write under the same section
// path drops every cached response for that section.
func CacheResponses(client *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if client == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			if c.Writer.Status() < 400 {
				invalidate(c, client)
			}
			return
		}
		if c.GetHeader("Authorization") != "" {
			c.Next()
			return
		}

		key := cachePrefix + c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			key += "?" + q
		}
		if body, err := client.Get(c.Request.Context(), key).Bytes(); err == nil {
			metrics.CacheHits.Inc()
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		if c.Writer.Status() == http.StatusOK && cw.buf.Len() > 0 {
			if err := client.Set(c.Request.Context(), key, cw.buf.Bytes(), ttl).Err(); err != nil {
				logger.Warnf("response cache set failed for %s: %v", key, err)
			}
		}
	}
}

// invalidate drops cached GETs under the written section path, e.g. a write to
// /api/gallery/123 clears cache:/api/gallery and everything below it.
func invalidate(c *gin.Context, client *redis.Client) {
	parts := strings.SplitN(strings.TrimPrefix(c.Request.URL.Path, "/"), "/", 3)
	if len(parts) < 2 {
		return
	}
	pattern := cachePrefix + "/" + parts[0] + "/" + parts[1] + "*"
	ctx := c.Request.Context()
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warnf("response cache invalidate %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warnf("response cache scan %s: %v", pattern, err)
	}
}
