package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取操作介面
// 用於封裝 Redis，方便測試時替換 FakeCache 實作
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	// TxPipelined 以 MULTI/EXEC 送出 fn 排入的指令，全部生效或全部不生效
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

type FakeCache struct {
	GetFn         func(ctx context.Context, key string) *redis.StringCmd
	SetFn         func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	TxPipelinedFn func(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	DelFn         func(ctx context.Context, keys ...string) *redis.IntCmd
	CloseFn       func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	if f.TxPipelinedFn != nil {
		return f.TxPipelinedFn(ctx, fn)
	}
	panic("unexpected TxPipelined")
}

// FakePipe 供 TxPipelinedFn 使用；只實作 limiter 會排入的指令，其餘呼叫因內嵌的 nil 介面而 panic
type FakePipe struct {
	redis.Pipeliner
	IncrFn     func(ctx context.Context, key string) *redis.IntCmd
	ExpireNXFn func(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

func (p *FakePipe) Incr(ctx context.Context, key string) *redis.IntCmd {
	if p.IncrFn != nil {
		return p.IncrFn(ctx, key)
	}
	panic("unexpected Incr")
}

func (p *FakePipe) ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if p.ExpireNXFn != nil {
		return p.ExpireNXFn(ctx, key, expiration)
	}
	panic("unexpected ExpireNX")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
