package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RedisDeduper stores seen idempotency keys in Redis so retried create
// requests are rejected instead of inserting twice.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduper creates a deduper using the provided Redis client and TTL.
func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

func (r *RedisDeduper) key(key string) string {
	return "idem:" + key
}

// Add records the key if it does not already exist. It returns true when the
// key was newly added.
func (r *RedisDeduper) Add(ctx context.Context, key string) (bool, error) {
	return r.client.SetNX(ctx, r.key(key), 1, r.ttl).Result()
}

// Remove deletes a previously recorded key so the client may retry after a
// downstream failure.
func (r *RedisDeduper) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Idempotency rejects replays of the Idempotency-Key request header with 409.
// Requests without the header pass through, as does everything when no
// deduper is configured. Redis trouble fails open: a create is better
// duplicated than dropped.
func Idempotency(deduper Deduper, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deduper == nil {
				return next(c)
			}
			key := c.Request().Header.Get("Idempotency-Key")
			if key == "" {
				return next(c)
			}
			ctx := c.Request().Context()
			added, err := deduper.Add(ctx, key)
			if err != nil {
				logger.WithError(err).Warn("idempotency check unavailable")
				return next(c)
			}
			if !added {
				return c.JSON(http.StatusConflict, errorResponse{Error: "duplicate request"})
			}
			err = next(c)
			if err != nil || c.Response().Status >= http.StatusInternalServerError {
				if rmErr := deduper.Remove(ctx, key); rmErr != nil {
					logger.WithError(rmErr).Warn("idempotency key not released")
				}
			}
			return err
		}
	}
}
