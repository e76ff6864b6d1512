package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// redisClient 為 NewRedisClient 內部需要的方法，測試時以 stub 取代
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// redisOptions addr 可為 host:port 或 redis:// URL；非空的 password 與 db > 0 會覆寫 URL 內的設定
func redisOptions(addr, password string, db int) (*redis.Options, error) {
	opt := &redis.Options{Addr: addr}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		opt = parsed
	}
	if password != "" {
		opt.Password = password
	}
	if db > 0 {
		opt.DB = db
	}
	return opt, nil
}

// NewRedisClient 建立連線並確認可 Ping，*redis.Client 直接實作 Cache
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	opt, err := redisOptions(addr, password, db)
	if err != nil {
		return nil, err
	}
	client := redisNewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opt.Addr, err)
	}
	return client, nil
}
