// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tripthrive/config"

	"github.com/go-redis/redis/v8"
)

// RevokedTokenPrefix namespaces revoked-session keys in the auth cache.
const RevokedTokenPrefix = "revoked:"

// AuthCacheClient is the dedicated client for the session revocation list.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client backing the revocation list.
// Redis being down is not fatal: logout degrades to cookie-clear-only and
// the auth middleware skips the revocation check.
func InitAuthCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis (Auth Cache): %v", err)
		return
	}
	AuthCacheClient = client
}

// GetAuthCacheClient returns the Redis client for the revocation list, or nil
// when the cache is unavailable.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
