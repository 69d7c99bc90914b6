package database

import (
	"context"
	"time"

	"vehicle-rental/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis for catalog response caching. A nil return
// means caching is disabled; callers must degrade gracefully.
func InitRedis(config utils.RedisConfig) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}

	return client
}
