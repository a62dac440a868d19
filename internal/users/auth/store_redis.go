// Copyright (c) 2026 FB-API. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/itstee2k3/fb-api/internal/platform/constants"
)

// # Login Throttle Repository

// RedisLoginThrottleRepository implements LoginThrottleRepository using Redis.
//
// Counters are keyed by the lowercased login identifier so that attempts
// against "Alice" and "alice" land in the same bucket.
type RedisLoginThrottleRepository struct {
	client *redis.Client
}

// NewLoginThrottleRepository creates a new Redis-backed LoginThrottleRepository.
func NewLoginThrottleRepository(client *redis.Client) *RedisLoginThrottleRepository {
	return &RedisLoginThrottleRepository{client: client}
}

/*
Hit records one failed attempt and returns the running total.

Description: INCR and EXPIRE run in a single pipeline. The TTL is refreshed
on every failure, so the window slides while an attacker keeps probing.

Parameters:
  - context: context.Context
  - login: string

Returns:
  - int64: Attempt count including this one
  - error: Execution errors
*/
func (repository *RedisLoginThrottleRepository) Hit(context context.Context, login string) (int64, error) {
	key := throttleKey(login)

	pipe := repository.client.TxPipeline()
	counter := pipe.Incr(context, key)
	pipe.Expire(context, key, LoginAttemptWindow)

	if _, err := pipe.Exec(context); err != nil {
		return 0, fmt.Errorf("redis_login_throttle_hit_failed: %w", err)
	}

	return counter.Val(), nil
}

/*
Reset clears the attempt counter after a successful login.

Parameters:
  - context: context.Context
  - login: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisLoginThrottleRepository) Reset(context context.Context, login string) error {
	if err := repository.client.Del(context, throttleKey(login)).Err(); err != nil {
		return fmt.Errorf("redis_login_throttle_reset_failed: %w", err)
	}

	return nil
}

// throttleKey builds the namespaced Redis key for a login identifier.
func throttleKey(login string) string {
	return constants.RedisPrefixLoginAttempts + strings.ToLower(login)
}
