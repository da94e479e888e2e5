package utils

import (
	"context"

	"github.com/go-redis/redis/v8"
)

var redisClient *redis.Client

func SetRedis(client *redis.Client) {
	redisClient = client
}

// GetRedis returns the shared client, or nil when Redis was never wired
// (tests run without it; callers must tolerate nil).
func GetRedis() *redis.Client {
	return redisClient
}

var ctx = context.Background()

func RedisCtx() context.Context {
	return ctx
}
