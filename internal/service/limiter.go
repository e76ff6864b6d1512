// File: internal/service/limiter.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Grefendor/drinks/internal/cache"

	"github.com/redis/go-redis/v9"
)

const attemptKeyPrefix = "pin_attempts:"

// AttemptLimiter 以 Redis 計數 PIN 驗證失敗次數，window 內達 max 次即拒絕
type AttemptLimiter struct {
	cache  cache.Cache
	max    int
	window time.Duration
}

func NewAttemptLimiter(c cache.Cache, max int, window time.Duration) *AttemptLimiter {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &AttemptLimiter{cache: c, max: max, window: window}
}

// Allowed 回傳 key 是否仍可嘗試
func (l *AttemptLimiter) Allowed(ctx context.Context, key string) (bool, error) {
	n, err := l.cache.Get(ctx, attemptKeyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("AttemptLimiter.Allowed: %w", err)
	}
	return n < l.max, nil
}

// Fail 記錄一次失敗；INCR 與 EXPIRE NX 在同一個 MULTI/EXEC 內送出，
// 計數不會在沒有期限的狀態下留存。window 自第一次失敗起算 (需 Redis 7+)
func (l *AttemptLimiter) Fail(ctx context.Context, key string) error {
	k := attemptKeyPrefix + key
	_, err := l.cache.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, k)
		p.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("AttemptLimiter.Fail: %w", err)
	}
	return nil
}

// Reset 成功驗證後清除計數
func (l *AttemptLimiter) Reset(ctx context.Context, key string) error {
	if err := l.cache.Del(ctx, attemptKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("AttemptLimiter.Reset: %w", err)
	}
	return nil
}

// Window 回傳計數的有效期間，供 Retry-After 使用
func (l *AttemptLimiter) Window() time.Duration { return l.window }
