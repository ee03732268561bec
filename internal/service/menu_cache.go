package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/pkg/logger"
)

const menuVersionKey = "menus:version"

// MenuCache 菜单列表读缓存
// 写操作只递增版本号，旧版本的 key 自然过期
type MenuCache struct {
	rdb *redis.Client
	ttl time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats 命中统计
type CacheStats struct {
	Enabled bool  `json:"enabled"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// NewMenuCache rdb 为 nil 时缓存关闭
func NewMenuCache(rdb *redis.Client, ttl time.Duration) *MenuCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &MenuCache{rdb: rdb, ttl: ttl}
}

func (c *MenuCache) enabled() bool { return c != nil && c.rdb != nil }

func (c *MenuCache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	return CacheStats{Enabled: c.rdb != nil, Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Ping 缓存关闭时直接成功
func (c *MenuCache) Ping(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *MenuCache) key(ctx context.Context, companyID uint, date string) (string, error) {
	ver, err := c.rdb.Get(ctx, menuVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("menus:v%d:empresa:%d:fecha:%s", ver, companyID, date), nil
}

// Get 命中返回 true；redis 故障当作未命中。
// 未命中时返回的 key 绑定本次读到的版本号，查库后交给 Set，
// 查库期间发生的写入会递增版本号，这次结果也就不会再被读到
func (c *MenuCache) Get(ctx context.Context, companyID uint, date string) ([]model.Menu, string, bool) {
	if !c.enabled() {
		return nil, "", false
	}
	key, err := c.key(ctx, companyID, date)
	if err != nil {
		logger.Warn("menu cache version read failed", zap.Error(err))
		c.misses.Add(1)
		return nil, "", false
	}
	menus, ok := c.load(ctx, key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return menus, key, ok
}

func (c *MenuCache) load(ctx context.Context, key string) ([]model.Menu, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("menu cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var menus []model.Menu
	if err := json.Unmarshal(data, &menus); err != nil {
		logger.Warn("menu cache decode failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return menus, true
}

// Set 写入 Get 返回的 key；key 为空时不缓存
func (c *MenuCache) Set(ctx context.Context, key string, menus []model.Menu) {
	if !c.enabled() || key == "" {
		return
	}
	data, err := json.Marshal(menus)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn("menu cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate 递增版本号，之前缓存的列表全部失效
func (c *MenuCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.rdb.Incr(ctx, menuVersionKey).Err(); err != nil {
		logger.Error("menu cache invalidate failed", zap.Error(err))
	}
}
