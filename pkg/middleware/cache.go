package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cacheWriter captures the response while forwarding it to the client.
type cacheWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *cacheWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

func cacheKey(r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("httpcache:%x", sum[:])
}

// CacheInvalidate drops every cached response after a successful write,
// so mutations show up in cached listings right away instead of waiting
// out the TTL. With a nil client it is a pass-through.
func CacheInvalidate(rdb *redis.Client, logger *zap.Logger) func(http.Handler) http.Handler {
	if rdb == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			if rw.statusCode < http.StatusOK || rw.statusCode >= http.StatusMultipleChoices {
				return
			}

			iter := rdb.Scan(r.Context(), 0, "httpcache:*", 0).Iterator()
			for iter.Next(r.Context()) {
				if err := rdb.Del(r.Context(), iter.Val()).Err(); err != nil {
					logger.Warn("Failed to drop cached response",
						zap.Error(err), zap.String("key", iter.Val()))
				}
			}
			if err := iter.Err(); err != nil {
				logger.Warn("Failed to scan response cache", zap.Error(err))
			}
		})
	}
}

// Cache serves successful GET responses from Redis for the given TTL.
// With a nil client it is a pass-through, so the API runs without Redis.
// Only JSON endpoints go through it; the body is stored as-is.
func Cache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	if rdb == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	if ttl <= 0 {
		ttl = time.Minute
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)

			if body, err := rdb.Get(r.Context(), key).Bytes(); err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			cw := &cacheWriter{ResponseWriter: w, status: http.StatusOK}
			cw.Header().Set("X-Cache", "MISS")

			next.ServeHTTP(cw, r)

			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				if err := rdb.Set(r.Context(), key, cw.buf.Bytes(), ttl).Err(); err != nil {
					logger.Warn("Failed to store response in cache",
						zap.Error(err), zap.String("path", r.URL.Path))
				}
			}
		})
	}
}
