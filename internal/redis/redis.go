package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

const blacklistPrefix = "auth:blacklist:"

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// BlacklistToken stores a revoked bearer token until its natural expiry.
func BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if Rdb == nil {
		return nil
	}
	if err := Rdb.Set(ctx, blacklistPrefix+token, "revoked", ttl).Err(); err != nil {
		log.Error().Err(err).Msg("failed to blacklist token")
		return err
	}
	return nil
}

// IsTokenBlacklisted reports whether a token was revoked by logout. When
// Redis is down or not configured, tokens are treated as live; the JWT
// expiry still bounds their lifetime.
func IsTokenBlacklisted(ctx context.Context, token string) bool {
	if Rdb == nil {
		return false
	}
	n, err := Rdb.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		log.Error().Err(err).Msg("token blacklist lookup failed")
		return false
	}
	return n > 0
}
