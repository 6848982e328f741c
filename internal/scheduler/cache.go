package scheduler

import (
	"sync"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

type cacheKey struct {
	plantID     int64
	horizonDays int32
	fingerprint string
}

type cacheEntry struct {
	entries     []*domain.ScheduleEntry
	fingerprint string
	createdAt   time.Time
}

// 排程结果的内存缓存，按（植物、排程范围、环境快照指纹）作为 key。
// 缓存对象由构造函数显式创建并注入，清扫任务通过 Start/Stop 控制生命周期，
// 这样测试可以创建互相隔离的实例并注入固定时钟。
// 并发的读写是安全的；同一个 key 上 check-then-act 不是原子的，
// 最坏情况是重复计算一次排程，计算本身没有副作用，所以无需为此加锁
type Cache struct {
	duration time.Duration
	now      func() time.Time

	mu      sync.RWMutex
	entries map[cacheKey]*cacheEntry

	stop chan struct{}
}

func NewCache(duration time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}

	return &Cache{
		duration: duration,
		now:      now,
		entries:  make(map[cacheKey]*cacheEntry),
		stop:     make(chan struct{}),
	}
}

// 启动后台清扫任务。清扫的周期和缓存的有效期相同，
// 它会删除所有过期的条目，保证即使没有请求访问，缓存也不会无限增长
func (c *Cache) Start() {
	go func() {
		ticker := time.NewTicker(c.duration)
		defer ticker.Stop()

		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *Cache) Stop() {
	close(c.stop)
}

func (c *Cache) Get(plantID int64, horizonDays int32, snapshot domain.EnvironmentalSnapshot) ([]*domain.ScheduleEntry, bool) {
	fingerprint := snapshot.Fingerprint()
	key := cacheKey{
		plantID:     plantID,
		horizonDays: horizonDays,
		fingerprint: fingerprint,
	}

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	// 过期或者指纹不匹配都算未命中，过期条目留给后台清扫删除
	if c.now().Sub(entry.createdAt) > c.duration {
		return nil, false
	}
	if entry.fingerprint != fingerprint {
		return nil, false
	}

	return entry.entries, true
}

func (c *Cache) Set(plantID int64, horizonDays int32, snapshot domain.EnvironmentalSnapshot, entries []*domain.ScheduleEntry) {
	key := cacheKey{
		plantID:     plantID,
		horizonDays: horizonDays,
		fingerprint: snapshot.Fingerprint(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		entries:     entries,
		fingerprint: key.fingerprint,
		createdAt:   c.now(),
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache) sweep() {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if now.Sub(entry.createdAt) > c.duration {
			delete(c.entries, key)
		}
	}
}
